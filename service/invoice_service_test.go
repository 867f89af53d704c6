package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func TestExtractFromText(t *testing.T) {
	svc := NewInvoiceService(nil, nil, nil, 0)

	resp, err := svc.ExtractFromText("Invoice No: INV-9\nGrand Total: 500.00")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.ProcessedAt)
	assert.Equal(t, "INV-9", resp.Invoice.InvoiceNumber)
	assert.Equal(t, 500.0, resp.Invoice.GrandTotal)
	assert.Contains(t, resp.Summary, "INVOICE SUMMARY")
}

func TestExtractFromTextEmpty(t *testing.T) {
	svc := NewInvoiceService(nil, nil, nil, 0)

	_, err := svc.ExtractFromText("   \n  ")
	assert.ErrorIs(t, err, dto.ErrNoText)
}

func TestExtractFromTextUniqueRequestIDs(t *testing.T) {
	svc := NewInvoiceService(nil, nil, nil, 0)

	first, err := svc.ExtractFromText("Invoice No: INV-9")
	assert.NoError(t, err)
	second, err := svc.ExtractFromText("Invoice No: INV-9")
	assert.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
}
