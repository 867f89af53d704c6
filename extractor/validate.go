package extractor

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/khuswant18/paddle-ocr/dto"
)

// round2 rounds a monetary value to two decimal places.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// validateItems repairs line items whose stated amount disagrees with
// quantity × unit price by more than 0.01. The amount is always the field
// overwritten; quantity and unit price are trusted.
func (e *Extractor) validateItems(rec *dto.InvoiceRecord) {
	for i := range rec.Items {
		item := &rec.Items[i]
		if item.Quantity > 0 && item.UnitPrice > 0 {
			calculated := item.Quantity * item.UnitPrice
			if math.Abs(calculated-item.Amount) > 0.01 {
				item.Amount = round2(calculated)
			}
		}
	}
}

// validateTotals reconciles the stated totals against the item sum. A grand
// total below half the item sum is treated as OCR damage and recomputed as
// item sum minus discount, as is a missing grand total; a missing subtotal is
// replaced by the item sum. A stated subtotal is never rewritten, even when
// it deviates from the item sum (see SubtotalMismatch).
func (e *Extractor) validateTotals(rec *dto.InvoiceRecord) {
	if len(rec.Items) == 0 {
		return
	}

	itemSum := rec.ItemSum()

	if rec.GrandTotal > 0 && itemSum > 0 {
		if rec.GrandTotal < itemSum*0.5 {
			rec.GrandTotal = itemSum - rec.Discount
		}
	} else if itemSum > 0 && rec.GrandTotal == 0 {
		rec.GrandTotal = itemSum - rec.Discount
	}

	if rec.Subtotal == 0 && itemSum > 0 {
		rec.Subtotal = itemSum
	}
}

// SubtotalMismatch reports a stated subtotal deviating from the item sum by
// more than 10%. The subtotal is deliberately left as extracted in that case
// while the grand total uses a 50% threshold and is repaired; callers may
// surface the mismatch as a warning.
func SubtotalMismatch(rec *dto.InvoiceRecord) bool {
	itemSum := rec.ItemSum()
	if rec.Subtotal <= 0 || itemSum <= 0 {
		return false
	}
	return math.Abs(rec.Subtotal-itemSum)/itemSum > 0.1
}
