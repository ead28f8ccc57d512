package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Ao molho", value: 19.9, expected: "R$ 19,90"},
		{name: "Veggie", value: 21.9, expected: "R$ 21,90"},
		{name: "A la Camarón", value: 25.9, expected: "R$ 25,90"},
		{name: "Zero", value: 0, expected: "R$ 0,00"},
		{name: "Cents only", value: 0.5, expected: "R$ 0,50"},
		{name: "Thousands separator", value: 1234.5, expected: "R$ 1.234,50"},
		{name: "Millions", value: 1234567.89, expected: "R$ 1.234.567,89"},
		{name: "Negative", value: -2, expected: "-R$ 2,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.value))
		})
	}
}
