package extractor

import (
	"regexp"
	"strings"
)

// Candidate tokens for an invoice number are rejected when they look like one
// of these instead: an address fragment, a phone reference, a bare date.
var invoiceNumberBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d{4}[a-z]+$`),
	regexp.MustCompile(`(?i)^\d+\s+\w+\s+(extension|street|road|ave|avenue|blvd|city|subdivision)`),
	regexp.MustCompile(`(?i)^tel\.?\s*no`),
	regexp.MustCompile(`^\d{3}[-.]\d{3}[-.]\d{4}`),
	regexp.MustCompile(`^\d{2}[-/]\d{2}[-/]\d{2,4}$`),
}

var invoiceNumberStopWords = map[string]bool{
	"no": true, "number": true, "date": true, "to": true, "the": true, "from": true, "for": true,
}

// Label synonyms tried for the invoice number, most specific forms first.
var invoiceNumberKeywords = []string{
	"invoice", "inv", "bill no", "bill number", "receipt no", "receipt",
	"voucher no", "ref no", "reference", "memo no", "doc no", "document",
}

var invoiceNumberPatterns = compileInvoiceNumberPatterns()

var hashNumberPattern = regexp.MustCompile(`[№#]\s*(\d{4,})`)

func compileInvoiceNumberPatterns() [][]*regexp.Regexp {
	patterns := make([][]*regexp.Regexp, 0, len(invoiceNumberKeywords))
	for _, kw := range invoiceNumberKeywords {
		quoted := regexp.QuoteMeta(kw)
		patterns = append(patterns, []*regexp.Regexp{
			regexp.MustCompile(`(?i)` + quoted + `[\s#.:no-]*[:\s#]+([A-Z0-9\-/]+)`),
			regexp.MustCompile(`(?i)` + quoted + `[\s]*(?:no|number|#|num)?[\s.:]*([A-Z0-9\-/]+)`),
		})
	}
	return patterns
}

// extractInvoiceNumber tries each label synonym with two capture shapes and
// validates the candidate: 2-30 chars, at least one digit, not a stop word,
// not blacklisted. Falls back to a №/# prefixed number. Returns "" when
// nothing qualifies.
func (e *Extractor) extractInvoiceNumber(text string) string {
	for _, patterns := range invoiceNumberPatterns {
		for _, re := range patterns {
			match := re.FindStringSubmatch(text)
			if len(match) < 2 {
				continue
			}
			val := strings.TrimSpace(match[1])
			if len(val) < 2 || len(val) > 30 {
				continue
			}
			if invoiceNumberStopWords[strings.ToLower(val)] {
				continue
			}
			invalid := false
			for _, bad := range invoiceNumberBlacklist {
				if bad.MatchString(val) {
					invalid = true
					break
				}
			}
			if invalid {
				continue
			}
			if digitCount(val) > 0 {
				return val
			}
		}
	}

	if match := hashNumberPattern.FindStringSubmatch(text); len(match) > 1 {
		return match[1]
	}
	return ""
}

var poNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)p\.?\s*o\.?\s*n?o?[\s.:]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)purchase\s*order[\s.:]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)order[\s#.:no]*[:\s]+([A-Z0-9\-]+)`),
}

// extractPONumber returns the first purchase-order token a pattern captures.
func (e *Extractor) extractPONumber(text string) string {
	for _, re := range poNumberPatterns {
		if match := re.FindStringSubmatch(text); len(match) > 1 {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

// The four date shapes recognized anywhere a date is expected.
var dateShapes = []string{
	`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
	`(\d{4}[/-]\d{1,2}[/-]\d{1,2})`,
	`(\d{1,2}\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]*\d{2,4})`,
	`((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}[,\s]+\d{2,4})`,
}

var bareDatePatterns = compileBareDatePatterns()

func compileBareDatePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(dateShapes))
	for _, shape := range dateShapes {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+shape))
	}
	return patterns
}

// compileDatePatterns pairs every label synonym of the date fields with each
// date shape, anchored on the same line.
func (e *Extractor) compileDatePatterns() {
	for _, field := range []string{FieldInvoiceDate, FieldDueDate} {
		var patterns []*regexp.Regexp
		for _, kw := range e.matcher.variants[field] {
			quoted := regexp.QuoteMeta(kw)
			for _, shape := range dateShapes {
				patterns = append(patterns, regexp.MustCompile(`(?i)`+quoted+`[^\n]*?`+shape))
			}
		}
		e.datePatterns[field] = patterns
	}
}

var phoneContextWords = []string{"tel", "phone", "fax", "mobile", "cell"}

// extractDate finds a date anchored to one of the field's label synonyms. A
// candidate with more than 8 digits is rejected, which filters out phone
// numbers that happen to follow a "date" label. For the invoice date, an
// unanchored scan over the whole document is the fallback, skipping dates
// preceded within 20 chars by a phone-context word.
func (e *Extractor) extractDate(text, field string) string {
	for _, re := range e.datePatterns[field] {
		if match := re.FindStringSubmatch(text); len(match) > 1 {
			if digitCount(match[1]) <= 8 {
				return match[1]
			}
		}
	}

	if field != FieldInvoiceDate {
		return ""
	}

	for _, re := range bareDatePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if len(loc) < 4 {
				continue
			}
			dateStr := text[loc[2]:loc[3]]
			start := loc[0] - 20
			if start < 0 {
				start = 0
			}
			context := strings.ToLower(text[start:loc[0]])
			phoneContext := false
			for _, word := range phoneContextWords {
				if strings.Contains(context, word) {
					phoneContext = true
					break
				}
			}
			if phoneContext {
				continue
			}
			if digitCount(dateStr) <= 8 {
				return dateStr
			}
		}
	}
	return ""
}
