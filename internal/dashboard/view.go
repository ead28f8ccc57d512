package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorestaurant/internal/currency"
)

// Screen copy.
const (
	SearchPlaceholder = "Qual comida você procura?"
	CategoriesTitle   = "Categorias"
	FoodsTitle        = "Pratos"
	LogoutIcon        = "log-out"
)

// View is one render pass of the screen.
type View struct {
	LogoutIcon        string
	SearchPlaceholder string
	SearchValue       string
	CategoriesTitle   string
	Categories        []CategoryItem
	FoodsTitle        string
	Foods             []FoodCard
}

// CategoryItem is an entry of the horizontal category selector.
type CategoryItem struct {
	ID       int
	Title    string
	ImageURL string
	Selected bool
	TestID   string
}

// FoodCard is an entry of the food list.
type FoodCard struct {
	ID             int
	Name           string
	Description    string
	ThumbnailURL   string
	FormattedPrice string
	TestID         string
}

// CategoryTestID identifies a category item in a rendered screen.
func CategoryTestID(id int) string {
	return "category-" + strconv.Itoa(id)
}

// FoodTestID identifies a food card in a rendered screen.
func FoodTestID(id int) string {
	return "food-" + strconv.Itoa(id)
}

// View builds the view model from the current state. Prices are formatted here.
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := View{
		LogoutIcon:        LogoutIcon,
		SearchPlaceholder: SearchPlaceholder,
		SearchValue:       d.search,
		CategoriesTitle:   CategoriesTitle,
		Categories:        make([]CategoryItem, 0, len(d.categories)),
		FoodsTitle:        FoodsTitle,
		Foods:             make([]FoodCard, 0, len(d.foods)),
	}

	for _, c := range d.categories {
		v.Categories = append(v.Categories, CategoryItem{
			ID:       c.ID,
			Title:    c.Title,
			ImageURL: c.ImageURL,
			Selected: d.selected != nil && *d.selected == c.ID,
			TestID:   CategoryTestID(c.ID),
		})
	}

	for _, f := range d.foods {
		v.Foods = append(v.Foods, FoodCard{
			ID:             f.ID,
			Name:           f.Name,
			Description:    f.Description,
			ThumbnailURL:   f.ThumbnailURL,
			FormattedPrice: currency.Format(f.Price),
			TestID:         FoodTestID(f.ID),
		})
	}

	return v
}

// Render writes a plain-text rendition of v.
func Render(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "GoRestaurant  [%s]\n\n", v.LogoutIcon)

	search := v.SearchValue
	if search == "" {
		search = v.SearchPlaceholder
	}
	fmt.Fprintf(&b, "> %s\n\n", search)

	fmt.Fprintf(&b, "%s\n", v.CategoriesTitle)
	if len(v.Categories) == 0 {
		b.WriteString("  (nenhuma)\n")
	}
	for _, c := range v.Categories {
		marker := " "
		if c.Selected {
			marker = "*"
		}
		fmt.Fprintf(&b, " %s %s [%s]\n", marker, c.Title, c.TestID)
	}

	fmt.Fprintf(&b, "\n%s\n", v.FoodsTitle)
	if len(v.Foods) == 0 {
		b.WriteString("  (nenhum)\n")
	}
	for _, f := range v.Foods {
		fmt.Fprintf(&b, "  %s  %s [%s]\n", f.Name, f.FormattedPrice, f.TestID)
		if f.Description != "" {
			fmt.Fprintf(&b, "    %s\n", f.Description)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
