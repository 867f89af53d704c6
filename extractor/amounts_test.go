package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func TestExtractAmounts(t *testing.T) {
	e := New(0)
	text := `Net Amount: 2,530.00
Discount: 30.00
Grand Total: 2,500.00`

	rec := &dto.InvoiceRecord{}
	e.extractAmounts(text, rec)

	assert.Equal(t, 2530.0, rec.Subtotal)
	assert.Equal(t, 30.0, rec.Discount)
	assert.Equal(t, 2500.0, rec.GrandTotal)
	assert.Equal(t, 0.0, rec.BalanceDue)
}

func TestExtractAmountsGST(t *testing.T) {
	e := New(0)
	text := `CGST: 225.00
SGST: 225.00
Grand Total: 2,950.00`

	rec := &dto.InvoiceRecord{}
	e.extractAmounts(text, rec)

	assert.Equal(t, 225.0, rec.CGST)
	assert.Equal(t, 225.0, rec.SGST)
	assert.Equal(t, 0.0, rec.IGST)
	assert.Equal(t, 2950.0, rec.GrandTotal)
}

func TestExtractAmountsLargestFallback(t *testing.T) {
	e := New(0)

	// No total label anywhere: the largest plausible number stands in.
	text := `Paper 123.45
Clips 999.99
Staplers 450.00`

	rec := &dto.InvoiceRecord{}
	e.extractAmounts(text, rec)

	assert.Equal(t, 999.99, rec.GrandTotal)
}

func TestExtractAmountsFallbackCeiling(t *testing.T) {
	e := New(0)

	// Identifier-sized numbers never become the grand total.
	rec := &dto.InvoiceRecord{}
	e.extractAmounts("Serial 99887766554 Clips 450.00", rec)

	assert.Equal(t, 450.0, rec.GrandTotal)
}

func TestExtractBankDetails(t *testing.T) {
	e := New(0)
	text := `A/C No: 123456789012
IFSC: SBIN0001234
Bank: State Bank of India`

	rec := &dto.InvoiceRecord{}
	e.extractBankDetails(text, "A/C NO: 123456789012\nIFSC: SBIN0001234\nBANK: STATE BANK OF INDIA", rec)

	assert.Equal(t, "State Bank of India", rec.BankName)
	assert.Equal(t, "123456789012", rec.AccountNumber)
	assert.Equal(t, "SBIN0001234", rec.IFSCCode)
}
