package extractor

import (
	"regexp"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// amountField routes a monetary keyword field to its slot on the record. The
// table is the single source of truth for amount extraction: one entry per
// monetary field, in extraction order.
type amountField struct {
	field  string
	target func(*dto.InvoiceRecord) *float64
}

var amountFieldTable = []amountField{
	{FieldSubtotal, func(r *dto.InvoiceRecord) *float64 { return &r.Subtotal }},
	{FieldDiscount, func(r *dto.InvoiceRecord) *float64 { return &r.Discount }},
	{FieldCGST, func(r *dto.InvoiceRecord) *float64 { return &r.CGST }},
	{FieldSGST, func(r *dto.InvoiceRecord) *float64 { return &r.SGST }},
	{FieldIGST, func(r *dto.InvoiceRecord) *float64 { return &r.IGST }},
	{FieldTaxTotal, func(r *dto.InvoiceRecord) *float64 { return &r.TaxTotal }},
	{FieldShipping, func(r *dto.InvoiceRecord) *float64 { return &r.Shipping }},
	{FieldGrandTotal, func(r *dto.InvoiceRecord) *float64 { return &r.GrandTotal }},
	{FieldAmountPaid, func(r *dto.InvoiceRecord) *float64 { return &r.AmountPaid }},
	{FieldBalanceDue, func(r *dto.InvoiceRecord) *float64 { return &r.BalanceDue }},
}

// grandTotalCeiling guards the largest-value fallback against phone numbers
// and identifiers masquerading as money.
const grandTotalCeiling = 10000000

// compileAmountPatterns prepares, per monetary field, one keyword-anchored
// numeric capture per label synonym. It also verifies the routing table is
// complete against the keyword table; a mismatch is a programming error.
func (e *Extractor) compileAmountPatterns() {
	e.amountPatterns = make([][]*regexp.Regexp, len(amountFieldTable))
	for i, af := range amountFieldTable {
		variants, ok := e.matcher.variants[af.field]
		if !ok {
			panic("extractor: no keywords declared for amount field " + af.field)
		}
		patterns := make([]*regexp.Regexp, 0, len(variants))
		for _, kw := range variants {
			quoted := regexp.QuoteMeta(strings.ToLower(kw))
			patterns = append(patterns, regexp.MustCompile(
				quoted+`[^0-9₹$]*[₹$Rs.\s]*(\d{1,3}(?:[,\s]?\d{2,3})*(?:\.\d{1,2})?)`))
		}
		e.amountPatterns[i] = patterns
	}
}

// extractAmounts fills the monetary block. For each field the label synonyms
// are tried in order, the first trailing numeric capture wins, and a value
// already set (by an earlier synonym or field) is never overwritten. When no
// grand total was labeled, the largest plausible numeric token in the
// document stands in for it.
func (e *Extractor) extractAmounts(text string, rec *dto.InvoiceRecord) {
	lower := strings.ToLower(text)

	for i, af := range amountFieldTable {
		target := af.target(rec)
		for _, re := range e.amountPatterns[i] {
			match := re.FindStringSubmatch(lower)
			if len(match) < 2 {
				continue
			}
			if v, ok := parseMoney(match[1]); ok {
				if *target == 0 {
					*target = v
				}
				break
			}
		}
	}

	if rec.GrandTotal == 0 {
		var largest float64
		for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
			if v, ok := parseMoney(m[1]); ok && v < grandTotalCeiling && v > largest {
				largest = v
			}
		}
		rec.GrandTotal = largest
	}
}

var (
	bankNamePattern      = regexp.MustCompile(`(?i)(?:bank|branch)[\s:]*([A-Za-z\s]+(?:bank)?)`)
	accountLabelKeywords = []string{"a/c", "ac", "account", "acct", "acc"}
	accountPatterns      = compileAccountPatterns()
)

func compileAccountPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(accountLabelKeywords))
	for _, kw := range accountLabelKeywords {
		patterns = append(patterns, regexp.MustCompile(
			`(?i)`+regexp.QuoteMeta(kw)+`[\s.:no#]*[:\s#]+(\d{9,18})`))
	}
	return patterns
}

// extractBankDetails recovers bank name, account number and IFSC routing
// code.
func (e *Extractor) extractBankDetails(text, upper string, rec *dto.InvoiceRecord) {
	if match := bankNamePattern.FindStringSubmatch(text); len(match) > 1 {
		rec.BankName = strings.TrimSpace(match[1])
	}

	for _, re := range accountPatterns {
		if match := re.FindStringSubmatch(text); len(match) > 1 {
			rec.AccountNumber = match[1]
			break
		}
	}

	if match := ifscPattern.FindString(upper); match != "" {
		rec.IFSCCode = match
	}
}
