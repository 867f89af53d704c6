package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// Shared format patterns, compiled once.
var (
	amountPattern  = regexp.MustCompile(`[$₹€£]?\s*(\d{1,3}(?:[,\s]?\d{2,3})*(?:\.\d{1,2})?)`)
	phonePattern   = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(?\d{2,5}\)?[-.\s]?)?\d{3,5}[-.\s]?\d{4,5}`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	gstinPattern   = regexp.MustCompile(`\d{2}[A-Z]{5}\d{4}[A-Z][A-Z\d]Z[A-Z\d]`)
	panPattern     = regexp.MustCompile(`[A-Z]{5}\d{4}[A-Z]`)
	ifscPattern    = regexp.MustCompile(`[A-Z]{4}0[A-Z0-9]{6}`)
	nonDigit       = regexp.MustCompile(`\D`)
)

// Extractor turns raw OCR text into a structured InvoiceRecord using keyword
// dictionaries, fuzzy label matching and layout heuristics. No model, no I/O:
// a single instance is immutable after construction and safe for concurrent
// use.
type Extractor struct {
	matcher *Matcher

	datePatterns   map[string][]*regexp.Regexp // field -> keyword-anchored date patterns
	amountPatterns [][]*regexp.Regexp          // parallel to amountFieldTable
}

// New builds an extractor with the given fuzzy threshold (<=0 selects the
// default of 65).
func New(threshold int) *Extractor {
	m := NewMatcher(threshold)

	e := &Extractor{
		matcher:      m,
		datePatterns: make(map[string][]*regexp.Regexp),
	}
	e.compileDatePatterns()
	e.compileAmountPatterns()
	return e
}

// Matcher exposes the underlying field matcher.
func (e *Extractor) Matcher() *Matcher { return e.matcher }

// Extract runs the full pipeline over one document's OCR text. Component
// order is fixed: header fields, parties, contacts, tax ids, items, item
// validation, amounts, total reconciliation, bank details. Malformed or empty
// input never fails; fields that cannot be recovered stay at their defaults.
func (e *Extractor) Extract(text string) *dto.InvoiceRecord {
	rec := &dto.InvoiceRecord{}
	lines := splitLines(text)
	upper := strings.ToUpper(text)

	rec.InvoiceNumber = e.extractInvoiceNumber(text)
	rec.InvoiceDate = e.extractDate(text, FieldInvoiceDate)
	rec.DueDate = e.extractDate(text, FieldDueDate)
	rec.PONumber = e.extractPONumber(text)

	e.extractParties(lines, rec)
	e.extractContacts(text, rec)
	e.extractTaxIDs(upper, rec)

	rec.Items = e.extractItems(lines)
	e.validateItems(rec)

	e.extractAmounts(text, rec)
	e.validateTotals(rec)

	e.extractBankDetails(text, upper, rec)

	return rec
}

// splitLines returns the trimmed, non-empty lines of the document.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// digitCount returns the number of decimal digits in s.
func digitCount(s string) int {
	return len(nonDigit.ReplaceAllString(s, ""))
}

// parseMoney parses a numeric token that may carry thousands separators.
func parseMoney(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
