package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func TestValidateItemsRepairsAmount(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{Items: []dto.LineItem{
		{SrNo: 1, Description: "Widget", Quantity: 3, UnitPrice: 10, Amount: 35},
		{SrNo: 2, Description: "Gadget", Quantity: 2, UnitPrice: 50, Amount: 100},
	}}

	e.validateItems(rec)

	assert.Equal(t, 30.0, rec.Items[0].Amount)
	assert.Equal(t, 100.0, rec.Items[1].Amount)
}

func TestValidateItemsLeavesPartialRows(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{Items: []dto.LineItem{
		{SrNo: 1, Description: "Widget", Quantity: 0, UnitPrice: 0, Amount: 75},
	}}

	e.validateItems(rec)

	// Without quantity and price there is nothing to cross-check.
	assert.Equal(t, 75.0, rec.Items[0].Amount)
}

func TestValidateTotalsRepairsDamagedGrandTotal(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{
		Items: []dto.LineItem{
			{Description: "A", Amount: 600},
			{Description: "B", Amount: 400},
		},
		GrandTotal: 100,
	}

	e.validateTotals(rec)

	assert.Equal(t, 1000.0, rec.GrandTotal)
	assert.Equal(t, 1000.0, rec.Subtotal)
}

func TestValidateTotalsFillsMissingGrandTotal(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{
		Items:    []dto.LineItem{{Description: "A", Amount: 900}},
		Discount: 50,
	}

	e.validateTotals(rec)

	assert.Equal(t, 850.0, rec.GrandTotal)
	assert.Equal(t, 900.0, rec.Subtotal)
}

func TestValidateTotalsKeepsPlausibleGrandTotal(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{
		Items:      []dto.LineItem{{Description: "A", Amount: 1000}},
		GrandTotal: 1180, // item sum plus tax
	}

	e.validateTotals(rec)

	assert.Equal(t, 1180.0, rec.GrandTotal)
}

func TestValidateTotalsNoItems(t *testing.T) {
	e := New(0)
	rec := &dto.InvoiceRecord{GrandTotal: 500}

	e.validateTotals(rec)

	assert.Equal(t, 500.0, rec.GrandTotal)
	assert.Equal(t, 0.0, rec.Subtotal)
}

func TestSubtotalMismatch(t *testing.T) {
	items := []dto.LineItem{{Description: "A", Amount: 1000}}

	// A stated subtotal far from the item sum is reported, not repaired.
	rec := &dto.InvoiceRecord{Items: items, Subtotal: 500}
	assert.True(t, SubtotalMismatch(rec))

	rec = &dto.InvoiceRecord{Items: items, Subtotal: 980}
	assert.False(t, SubtotalMismatch(rec))

	rec = &dto.InvoiceRecord{Items: items}
	assert.False(t, SubtotalMismatch(rec))
}
