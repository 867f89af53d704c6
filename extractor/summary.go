package extractor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// ToMap flattens the record into a key-value mapping for machine consumers.
// Every field is present, with the zero defaults of the record.
func ToMap(rec *dto.InvoiceRecord) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, map[string]interface{}{
			"sr_no":       it.SrNo,
			"description": it.Description,
			"hsn_code":    it.HSNCode,
			"quantity":    it.Quantity,
			"unit":        it.Unit,
			"unit_price":  it.UnitPrice,
			"discount":    it.Discount,
			"tax_rate":    it.TaxRate,
			"amount":      it.Amount,
		})
	}

	return map[string]interface{}{
		"invoice_number": rec.InvoiceNumber,
		"invoice_date":   rec.InvoiceDate,
		"due_date":       rec.DueDate,
		"po_number":      rec.PONumber,
		"seller_name":    rec.SellerName,
		"seller_address": rec.SellerAddress,
		"seller_phone":   rec.SellerPhone,
		"seller_email":   rec.SellerEmail,
		"seller_gstin":   rec.SellerGSTIN,
		"seller_pan":     rec.SellerPAN,
		"buyer_name":     rec.BuyerName,
		"buyer_address":  rec.BuyerAddress,
		"buyer_phone":    rec.BuyerPhone,
		"buyer_email":    rec.BuyerEmail,
		"buyer_gstin":    rec.BuyerGSTIN,
		"items":          items,
		"subtotal":       rec.Subtotal,
		"discount":       rec.Discount,
		"cgst":           rec.CGST,
		"sgst":           rec.SGST,
		"igst":           rec.IGST,
		"tax_total":      rec.TaxTotal,
		"shipping":       rec.Shipping,
		"grand_total":    rec.GrandTotal,
		"amount_paid":    rec.AmountPaid,
		"balance_due":    rec.BalanceDue,
		"payment_terms":  rec.PaymentTerms,
		"bank_name":      rec.BankName,
		"account_number": rec.AccountNumber,
		"ifsc_code":      rec.IFSCCode,
		"notes":          rec.Notes,
	}
}

// ToJSON renders the record mapping as indented JSON. Keys marshal in sorted
// order, so the rendering is canonical for a given record.
func ToJSON(rec *dto.InvoiceRecord) (string, error) {
	data, err := json.MarshalIndent(ToMap(rec), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal invoice record: %w", err)
	}
	return string(data), nil
}

const summaryRule = "============================================================"

// Summary renders the deterministic human-readable view: header, seller,
// buyer, items, amounts and bank sections in fixed order, omitting lines
// whose value is empty or zero.
func Summary(rec *dto.InvoiceRecord) string {
	var b []string
	b = append(b, summaryRule, "INVOICE SUMMARY", summaryRule)

	if rec.InvoiceNumber != "" {
		b = append(b, "Invoice #: "+rec.InvoiceNumber)
	}
	if rec.InvoiceDate != "" {
		b = append(b, "Date: "+rec.InvoiceDate)
	}
	if rec.DueDate != "" {
		b = append(b, "Due: "+rec.DueDate)
	}
	if rec.PONumber != "" {
		b = append(b, "PO #: "+rec.PONumber)
	}

	b = append(b, "", "SELLER:")
	if rec.SellerName != "" {
		b = append(b, "  "+rec.SellerName)
	}
	if rec.SellerAddress != "" {
		b = append(b, "  "+rec.SellerAddress)
	}
	if rec.SellerPhone != "" {
		b = append(b, "  Phone: "+rec.SellerPhone)
	}
	if rec.SellerGSTIN != "" {
		b = append(b, "  GSTIN: "+rec.SellerGSTIN)
	}

	b = append(b, "", "BUYER:")
	if rec.BuyerName != "" {
		b = append(b, "  "+rec.BuyerName)
	}
	if rec.BuyerAddress != "" {
		b = append(b, "  "+rec.BuyerAddress)
	}
	if rec.BuyerPhone != "" {
		b = append(b, "  Phone: "+rec.BuyerPhone)
	}
	if rec.BuyerGSTIN != "" {
		b = append(b, "  GSTIN: "+rec.BuyerGSTIN)
	}

	if len(rec.Items) > 0 {
		b = append(b, "", fmt.Sprintf("ITEMS (%d):", len(rec.Items)))
		b = append(b, strings.Repeat("-", 50))
		for _, item := range rec.Items {
			b = append(b, fmt.Sprintf("  %d. %s", item.SrNo, item.Description))
			if item.Quantity != 0 && item.UnitPrice != 0 {
				b = append(b, fmt.Sprintf("     %s %s × %s = %s",
					formatQuantity(item.Quantity), item.Unit,
					formatMoney(item.UnitPrice), formatMoney(item.Amount)))
			} else {
				b = append(b, "     Amount: "+formatMoney(item.Amount))
			}
		}
	}

	b = append(b, "", "AMOUNTS:")
	if rec.Subtotal != 0 {
		b = append(b, "  Subtotal: "+formatMoney(rec.Subtotal))
	}
	if rec.Discount != 0 {
		b = append(b, "  Discount: -"+formatMoney(rec.Discount))
	}
	if rec.CGST != 0 {
		b = append(b, "  CGST: "+formatMoney(rec.CGST))
	}
	if rec.SGST != 0 {
		b = append(b, "  SGST: "+formatMoney(rec.SGST))
	}
	if rec.IGST != 0 {
		b = append(b, "  IGST: "+formatMoney(rec.IGST))
	}
	if rec.TaxTotal != 0 {
		b = append(b, "  Tax: "+formatMoney(rec.TaxTotal))
	}
	if rec.Shipping != 0 {
		b = append(b, "  Shipping: "+formatMoney(rec.Shipping))
	}
	if rec.GrandTotal != 0 {
		b = append(b, "  TOTAL: "+formatMoney(rec.GrandTotal))
	}
	if rec.AmountPaid != 0 {
		b = append(b, "  Paid: "+formatMoney(rec.AmountPaid))
	}
	if rec.BalanceDue != 0 {
		b = append(b, "  Balance: "+formatMoney(rec.BalanceDue))
	}

	if rec.BankName != "" || rec.AccountNumber != "" {
		b = append(b, "", "BANK:")
		if rec.BankName != "" {
			b = append(b, "  "+rec.BankName)
		}
		if rec.AccountNumber != "" {
			b = append(b, "  A/C: "+rec.AccountNumber)
		}
		if rec.IFSCCode != "" {
			b = append(b, "  IFSC: "+rec.IFSCCode)
		}
	}

	b = append(b, summaryRule)
	return strings.Join(b, "\n")
}

// formatMoney renders a value with two decimals and thousands separators.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var grouped []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	out := string(grouped) + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatQuantity prints a quantity without trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
