package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractItemsStructuralRows(t *testing.T) {
	e := New(0)
	text := `Qty Particulars Rate Amount
1 Blue Ball Pen 10 5.00 50.00
2 Spiral Notebook 4 25.00 100.00
Grand Total: 150.00`

	items := e.extractItems(splitLines(text))

	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].SrNo)
	assert.Equal(t, "Blue Ball Pen", items[0].Description)
	assert.Equal(t, 10.0, items[0].Quantity)
	assert.Equal(t, 5.0, items[0].UnitPrice)
	assert.Equal(t, 50.0, items[0].Amount)
	assert.Equal(t, "Spiral Notebook", items[1].Description)
	assert.Equal(t, 100.0, items[1].Amount)
}

func TestExtractItemsQtyUnitRow(t *testing.T) {
	e := New(0)
	items := e.extractItems([]string{"10 PCS Assorted Pencils 12.00 120.00"})

	assert.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].Quantity)
	assert.Equal(t, "PCS", items[0].Unit)
	assert.Equal(t, "Assorted Pencils", items[0].Description)
	assert.Equal(t, 12.0, items[0].UnitPrice)
	assert.Equal(t, 120.0, items[0].Amount)
}

func TestExtractItemsDeduplicates(t *testing.T) {
	e := New(0)
	text := `1 Blue Ball Pen 10 5.00 50.00
1 Blue Ball Pen 10 5.00 50.00
2 Spiral Notebook 4 25.00 100.00`

	items := e.extractItems(splitLines(text))

	assert.Len(t, items, 2)
}

func TestExtractItemsSkipsHeadersAndTotals(t *testing.T) {
	e := New(0)
	text := `Qty Particulars Rate Amount
Subtotal: 150.00
Grand Total: 150.00`

	items := e.extractItems(splitLines(text))
	assert.Empty(t, items)
}

func TestParseCodeLine(t *testing.T) {
	item := parseCodeLine("HY(302) Star Jelly Candy 120g 1x40x24s 2 990.00 1,980.00", 1)

	assert.NotNil(t, item)
	assert.Equal(t, "HY(302) Star Jelly Candy 120g 1x40x24s", item.Description)
	assert.Equal(t, 2.0, item.Quantity)
	assert.Equal(t, 990.0, item.UnitPrice)
	assert.Equal(t, 1980.0, item.Amount)
}

func TestParseCodeLineRepairsAmount(t *testing.T) {
	// The stated amount disagrees with qty x rate; arithmetic wins.
	item := parseCodeLine("HY(411) Fruit Pop Asstd 3 550.00 1,850.00", 1)

	assert.NotNil(t, item)
	assert.Equal(t, 3.0, item.Quantity)
	assert.Equal(t, 550.0, item.UnitPrice)
	assert.Equal(t, 1650.0, item.Amount)
}

func TestParseCodeLineTooFewNumbers(t *testing.T) {
	assert.Nil(t, parseCodeLine("HY(302) Star Jelly Candy", 1))
}
