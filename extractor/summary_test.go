package extractor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func sampleRecord() *dto.InvoiceRecord {
	return &dto.InvoiceRecord{
		InvoiceNumber: "INV-7",
		InvoiceDate:   "12/05/2024",
		SellerName:    "Acme Trading",
		BuyerName:     "Sunrise Mart",
		Items: []dto.LineItem{
			{SrNo: 1, Description: "Widget", Quantity: 2, Unit: "PCS", UnitPrice: 500, Amount: 1000},
			{SrNo: 2, Description: "Gadget", Amount: 250},
		},
		Subtotal:   1250,
		GrandTotal: 1250,
	}
}

func TestSummary(t *testing.T) {
	s := Summary(sampleRecord())

	assert.Contains(t, s, "INVOICE SUMMARY")
	assert.Contains(t, s, "Invoice #: INV-7")
	assert.Contains(t, s, "Date: 12/05/2024")
	assert.Contains(t, s, "Acme Trading")
	assert.Contains(t, s, "Sunrise Mart")
	assert.Contains(t, s, "ITEMS (2):")
	assert.Contains(t, s, "1. Widget")
	assert.Contains(t, s, "2 PCS × 500.00 = 1,000.00")
	assert.Contains(t, s, "Amount: 250.00")
	assert.Contains(t, s, "Subtotal: 1,250.00")
	assert.Contains(t, s, "TOTAL: 1,250.00")

	// Absent sections and fields leave no trace.
	assert.NotContains(t, s, "BANK:")
	assert.NotContains(t, s, "Due:")
	assert.NotContains(t, s, "Discount:")
}

func TestSummaryDeterministic(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, Summary(rec), Summary(rec))
}

func TestToMapCoversAllFields(t *testing.T) {
	m := ToMap(sampleRecord())

	assert.Equal(t, "INV-7", m["invoice_number"])
	assert.Equal(t, 1250.0, m["grand_total"])
	assert.Len(t, m["items"], 2)

	// Empty fields are present with their zero defaults.
	assert.Equal(t, "", m["po_number"])
	assert.Equal(t, 0.0, m["balance_due"])
}

func TestToJSONRoundTrips(t *testing.T) {
	out, err := ToJSON(sampleRecord())
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "INV-7", decoded["invoice_number"])
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(0))
	assert.Equal(t, "999.99", formatMoney(999.99))
	assert.Equal(t, "1,234,567.50", formatMoney(1234567.5))
	assert.Equal(t, "-1,000.00", formatMoney(-1000))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", formatQuantity(2))
	assert.Equal(t, "2.5", formatQuantity(2.5))
}

func TestSummaryWithBankSection(t *testing.T) {
	rec := sampleRecord()
	rec.BankName = "State Bank of India"
	rec.AccountNumber = "123456789012"
	rec.IFSCCode = "SBIN0001234"

	s := Summary(rec)
	assert.Contains(t, s, "BANK:")
	assert.Contains(t, s, "A/C: 123456789012")
	assert.Contains(t, s, "IFSC: SBIN0001234")
	assert.True(t, strings.HasSuffix(s, summaryRule))
}
