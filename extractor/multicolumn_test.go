package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractItemsMulticolumn(t *testing.T) {
	e := New(0)

	// Column-split OCR: descriptions first, then the price and amount
	// columns as bare numeric lines.
	text := `HY(302) Star Jelly Candy
HY(305) Sour Gum Roll
990.00
1,980.00
550.00
550.00
Total Sales 2,530.00`

	items := e.extractItems(splitLines(text))

	assert.Len(t, items, 2)

	assert.Equal(t, "HY(302) Star Jelly Candy", items[0].Description)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 990.0, items[0].UnitPrice)
	assert.Equal(t, 1980.0, items[0].Amount)

	assert.Equal(t, "HY(305) Sour Gum Roll", items[1].Description)
	assert.Equal(t, 1.0, items[1].Quantity)
	assert.Equal(t, 550.0, items[1].UnitPrice)
	assert.Equal(t, 550.0, items[1].Amount)
}

func TestExtractItemsMulticolumnStopsAtTotals(t *testing.T) {
	e := New(0)

	// Numbers below the totals marker never become items.
	text := `HY(302) Star Jelly Candy
990.00
990.00
Total Sales 990.00
12,345.00`

	items := e.extractItems(splitLines(text))

	assert.Len(t, items, 1)
	assert.Equal(t, 990.0, items[0].Amount)
}

func TestIsProductLine(t *testing.T) {
	assert.True(t, isProductLine("HY(302) Star Jelly Candy", "hy(302) star jelly candy"))
	assert.True(t, isProductLine("Assorted Bubble Gum Sticks", "assorted bubble gum sticks"))
	assert.False(t, isProductLine("990.00", "990.00"))
	assert.False(t, isProductLine("Candy", "candy"))
}

func TestParseColumnNumber(t *testing.T) {
	v, ok := parseColumnNumber("2,530.00")
	assert.True(t, ok)
	assert.Equal(t, 2530.0, v)

	// OCR sometimes emits dots for both grouping and cents.
	v, ok = parseColumnNumber("1.940.00")
	assert.True(t, ok)
	assert.Equal(t, 1940.0, v)

	_, ok = parseColumnNumber("abc")
	assert.False(t, ok)
}
