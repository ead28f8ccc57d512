package main

import (
	"context"
	"fmt"
	"os"

	"gorestaurant/internal/config"

	"github.com/jackc/pgx/v5"
)

// Connects with the API's DB_* settings and reports what the catalog tables hold.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	for _, table := range []string{"categories", "foods", "food_extras"} {
		var count int
		err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
		if err != nil {
			fmt.Printf("  %-12s not available (%v)\n", table, err)
			continue
		}
		fmt.Printf("  %-12s %d rows\n", table, count)
	}
}
