package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// Product-code shapes. OCR output from tabular invoices often carries an
// "HY(302)"-style SKU prefix; lines bearing one are product rows even when
// they also contain totals keywords.
var (
	codeLinePattern   = regexp.MustCompile(`(?i)\bHY[\s(]?\d+`)
	parenCodePattern  = regexp.MustCompile(`\([A-Z0-9]+\)`)
	prefixCodePattern = regexp.MustCompile(`[A-Z]{2,4}[-\s]?\d{3,}`)
)

// Whole-line row shapes: qty/unit/description/rate/amount,
// serial/description/qty/rate/amount, code/description/qty/rate/amount.
var itemRowPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(\d+)\s+(cs|pcs?|box|kg|nos?|units?|ltrs?|ml|gms?|bags?|btls?|doz|ea)\s+(.+?)\s+(\d[\d,]*\.?\d*)\s+(\d[\d,]*\.?\d*)\s*$`),
	regexp.MustCompile(`^(\d{1,3})\s+(.+?)\s+(\d+(?:\.\d+)?)\s+(\d[\d,]*\.?\d*)\s+(\d[\d,]*\.?\d*)\s*$`),
	regexp.MustCompile(`(?i)^([A-Z]{2,4}[\s(]?\d+[A-Z]*[\)]?)\s+(.+?)\s+(\d+(?:\.\d+)?)\s+(\d[\d,]*\.?\d*)\s+(\d[\d,]*\.?\d*)\s*$`),
}

var unitTokens = map[string]bool{
	"cs": true, "pcs": true, "pc": true, "box": true, "kg": true, "nos": true,
	"no": true, "unit": true, "units": true, "ltr": true, "ml": true, "gm": true,
	"bag": true, "btl": true, "doz": true, "ea": true,
}

// Short lines containing one of these are headers, totals or metadata, not
// items.
var itemSkipKeywords = []string{
	"total", "subtotal", "amount", "tax", "gst", "discount", "shipping",
	"grand", "balance", "paid", "due", "net", "gross", "less", "add",
	"description", "qty", "rate", "unit", "particular", "hsn", "sac",
	"vat", "cgst", "sgst", "igst", "invoice", "bill", "date", "address",
	"phone", "tel", "fax", "email", "from", "buyer", "seller", "vendor",
	"customer", "ship", "print", "page", "authority", "tin", "accredit",
}

// extractItems reconstructs the purchased items, trying strategies in order:
// the structural row scan (with its per-line product-code fallbacks), then
// multicolumn reconstruction. The first strategy yielding at least two items
// wins; otherwise the structural result is preferred when non-empty, and the
// multicolumn partial result is the last resort.
func (e *Extractor) extractItems(lines []string) []dto.LineItem {
	structural := e.extractItemsStructural(lines)
	if len(structural) >= 2 {
		return structural
	}

	multicolumn := e.extractItemsMulticolumn(lines)
	if len(multicolumn) >= 2 {
		return multicolumn
	}

	if len(structural) > 0 {
		return structural
	}
	return multicolumn
}

// extractItemsStructural scans line by line for well-formed columnar rows.
// Lines that fail every row shape fall back to product-code parsing when they
// carry a recognizable code. Items are deduplicated by the first 20
// lowercased characters of the description, first occurrence winning.
func (e *Extractor) extractItemsStructural(lines []string) []dto.LineItem {
	var items []dto.LineItem
	seen := make(map[string]bool)
	srNo := 0

	appendItem := func(item *dto.LineItem) bool {
		if item == nil || item.Amount <= 0 || item.Description == "" {
			return false
		}
		key := descKey(item.Description)
		if seen[key] {
			return false
		}
		seen[key] = true
		items = append(items, *item)
		return true
	}

	for _, line := range lines {
		if len(line) < 5 {
			continue
		}
		lower := strings.ToLower(line)

		if isSkippableItemLine(line, lower) {
			continue
		}

		matched := false
		for i, re := range itemRowPatterns {
			groups := re.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			item := classifyRow(i, groups[1:], srNo+1)
			if item == nil {
				continue
			}
			if appendItem(item) {
				srNo++
				matched = true
			}
			break
		}
		if matched {
			continue
		}

		// Structural miss: recover product-code lines heuristically.
		var item *dto.LineItem
		if codeLinePattern.MatchString(line) {
			item = parseCodeLine(line, srNo+1)
		} else if parenCodePattern.MatchString(line) || prefixCodePattern.MatchString(line) {
			item = parseLooseProductLine(line, srNo+1)
		}
		if appendItem(item) {
			srNo++
		}
	}

	return items
}

// isSkippableItemLine reports header/total/metadata lines. Long lines are
// kept: a real row can legitimately contain a word like "total" in its
// description. Product-code lines are never skipped.
func isSkippableItemLine(line, lower string) bool {
	if len(line) >= 60 {
		return false
	}
	for _, kw := range itemSkipKeywords {
		if strings.Contains(lower, kw) {
			if codeLinePattern.MatchString(line) {
				return false
			}
			return true
		}
	}
	return false
}

// classifyRow shapes the captured groups of a structural row into a line
// item. patternIdx selects among the qty-unit, serial and product-code row
// forms; the qty-unit form is additionally verified by unit-token membership.
func classifyRow(patternIdx int, groups []string, srNo int) *dto.LineItem {
	if len(groups) != 5 {
		return nil
	}

	switch {
	case patternIdx == 0 && unitTokens[strings.ToLower(groups[1])]:
		qty, err1 := strconv.ParseFloat(groups[0], 64)
		rate, ok1 := parseMoney(groups[3])
		amount, ok2 := parseMoney(groups[4])
		if err1 != nil || !ok1 || !ok2 {
			return nil
		}
		return &dto.LineItem{
			SrNo:        srNo,
			Quantity:    qty,
			Unit:        strings.ToUpper(groups[1]),
			Description: strings.TrimSpace(groups[2]),
			UnitPrice:   rate,
			Amount:      amount,
		}

	case patternIdx == 2 && hasCodePrefix(groups[0]):
		qty, err1 := strconv.ParseFloat(groups[2], 64)
		rate, ok1 := parseMoney(groups[3])
		amount, ok2 := parseMoney(groups[4])
		if err1 != nil || !ok1 || !ok2 {
			return nil
		}
		return &dto.LineItem{
			SrNo:        srNo,
			Description: strings.TrimSpace(groups[0] + " " + groups[1]),
			Quantity:    qty,
			UnitPrice:   rate,
			Amount:      amount,
		}

	default:
		serial, err0 := strconv.Atoi(groups[0])
		qty, err1 := strconv.ParseFloat(groups[2], 64)
		rate, ok1 := parseMoney(groups[3])
		amount, ok2 := parseMoney(groups[4])
		if err0 != nil || err1 != nil || !ok1 || !ok2 {
			return nil
		}
		return &dto.LineItem{
			SrNo:        serial,
			Description: strings.TrimSpace(groups[1]),
			Quantity:    qty,
			UnitPrice:   rate,
			Amount:      amount,
		}
	}
}

func hasCodePrefix(s string) bool {
	upper := strings.ToUpper(s)
	return strings.HasPrefix(upper, "HY") || strings.HasPrefix(upper, "SK") || strings.HasPrefix(upper, "PR")
}

// descKey is the deduplication key for an item description.
func descKey(desc string) string {
	key := strings.ToLower(desc)
	if len(key) > 20 {
		key = key[:20]
	}
	return key
}
