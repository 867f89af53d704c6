package extractor

import (
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// extractContacts collects phone and email tokens from the whole document.
// The first of each is assigned to the seller, the second to the buyer,
// mirroring the top-down layout of most invoices.
func (e *Extractor) extractContacts(text string, rec *dto.InvoiceRecord) {
	var phones []string
	for _, p := range phonePattern.FindAllString(text, -1) {
		if digitCount(p) >= 10 {
			phones = append(phones, p)
		}
	}
	if len(phones) > 0 {
		rec.SellerPhone = phones[0]
		if len(phones) > 1 {
			rec.BuyerPhone = phones[1]
		}
	}

	emails := emailPattern.FindAllString(text, -1)
	if len(emails) > 0 {
		rec.SellerEmail = emails[0]
		if len(emails) > 1 {
			rec.BuyerEmail = emails[1]
		}
	}
}

// extractTaxIDs pulls GSTIN and PAN identifiers from the uppercased text.
// Up to two GSTINs are assigned seller-then-buyer. A PAN that is embedded in
// a matched GSTIN is discarded, since every GSTIN contains one.
func (e *Extractor) extractTaxIDs(upper string, rec *dto.InvoiceRecord) {
	gstins := gstinPattern.FindAllString(upper, -1)
	if len(gstins) > 0 {
		rec.SellerGSTIN = gstins[0]
		if len(gstins) > 1 {
			rec.BuyerGSTIN = gstins[1]
		}
	}

	joined := strings.Join(gstins, "")
	for _, pan := range panPattern.FindAllString(upper, -1) {
		if !strings.Contains(joined, pan) {
			rec.SellerPAN = pan
			break
		}
	}
}
