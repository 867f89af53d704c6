package extractor

import (
	"regexp"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// partyState tracks which section of the document header is being
// accumulated.
type partyState int

const (
	partyNone partyState = iota
	partySeller
	partyBuyer
)

// Seller and buyer section markers, tried in order. "sold to" is checked
// before the generic buyer markers so its remainder is seeded correctly.
var (
	sellerMarkers = []string{"from", "seller", "vendor", "sold by", "supplier", "bill from", "shipper"}
	buyerMarkers  = []string{"to", "bill to", "billed to", "sold to", "buyer", "customer", "ship to", "consignee", "deliver to"}

	// Column-header keywords: one of these ends party scanning because the
	// item table has started.
	partyEndMarkers = []string{"description", "qty", "quantity", "unit", "amount", "rate", "price", "hsn", "item", "particulars", "sl.", "sr.", "no."}
)

// Lines matching one of these are never part of a party name or address.
var partySkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d{2,4}[-/]\d{2}[-/]\d{2,4}$`),
	regexp.MustCompile(`(?i)^\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	regexp.MustCompile(`(?i)^tel\.?\s*no`),
	regexp.MustCompile(`(?i)^\d{2,}-\d{3}-\d{3}`),
	regexp.MustCompile(`(?i)^(invoice|bill|receipt|date|po|order)`),
	regexp.MustCompile(`(?i)^(gstin|pan|tin|vat)`),
	regexp.MustCompile(`(?i)^[\d,\.]+$`),
	regexp.MustCompile(`(?i)^\d+\s*(pcs|box|kg|nos|units)`),
}

var (
	letterRunPattern   = regexp.MustCompile(`[a-zA-Z]{2,}`)
	companyIndicators  = []string{"inc", "ltd", "llc", "pvt", "corp", "marketing", "enterprise", "trading", "company", "industries"}
	headerRejectWords  = []string{"invoice", "date", "tel", "fax", "address", "tin", "vat", "gstin"}
	sellerRejectWords  = []string{"tel", "fax", "phone", "email", "tin", "vat", "date", "invoice", "gstin"}
	buyerRejectWords   = []string{"tel", "fax", "phone", "email", "tin", "vat", "date", "invoice", "terms", "osca", "salesman", "cardholder", "gstin"}
)

// isValidPartyLine reports whether a line can belong to a party block: it has
// a run of letters, is at least 3 chars, and matches no skip pattern.
func isValidPartyLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, re := range partySkipPatterns {
		if re.MatchString(lower) {
			return false
		}
	}
	if !letterRunPattern.MatchString(line) {
		return false
	}
	if len(strings.TrimSpace(line)) < 3 {
		return false
	}
	return true
}

// partyTransition inspects one line for a section marker. It returns the next
// state, the text trailing the marker on the same line (the seed for the new
// section), and whether a marker fired. It is a pure function of its inputs.
func partyTransition(state partyState, line string) (partyState, string, bool) {
	lower := strings.ToLower(line)

	seedAfter := func(marker string) string {
		idx := strings.Index(lower, marker)
		remainder := strings.Trim(line[idx+len(marker):], " :.-")
		if len(remainder) > 2 && isValidPartyLine(remainder) {
			return remainder
		}
		return ""
	}

	if strings.Contains(lower, "sold to") {
		return partyBuyer, seedAfter("sold to"), true
	}
	for _, marker := range buyerMarkers {
		if strings.Contains(lower, marker) {
			return partyBuyer, seedAfter(marker), true
		}
	}
	for _, marker := range sellerMarkers {
		if strings.Contains(lower, marker) {
			return partySeller, seedAfter(marker), true
		}
	}
	return state, "", false
}

// containsAny reports whether lower contains one of the needles.
func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// looksLikeCompanyHeader reports whether an unmarked line near the top of the
// document plausibly names the issuing company.
func looksLikeCompanyHeader(line string) bool {
	lower := strings.ToLower(line)
	if containsAny(lower, companyIndicators) {
		return true
	}
	return len(line) > 5 && !containsAny(lower, headerRejectWords)
}

// extractParties walks the line list with a seller/buyer state machine and
// fills the party identity blocks. Scanning stops at the first item-table
// header line. Unmarked lines within the first 8 lines accumulate as a
// header fallback used as the seller when no explicit seller marker fired.
func (e *Extractor) extractParties(lines []string, rec *dto.InvoiceRecord) {
	state := partyNone
	var sellerLines, buyerLines, headerLines []string

	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, partyEndMarkers) {
			break
		}
		if codeLinePattern.MatchString(line) {
			continue
		}

		if next, seed, fired := partyTransition(state, line); fired {
			state = next
			if seed != "" {
				switch state {
				case partySeller:
					sellerLines = append(sellerLines, seed)
				case partyBuyer:
					buyerLines = append(buyerLines, seed)
				}
			}
			continue
		}

		if state == partyNone && i < 8 {
			if isValidPartyLine(line) && looksLikeCompanyHeader(line) {
				headerLines = append(headerLines, line)
			}
		}

		switch state {
		case partySeller:
			if len(sellerLines) < 5 && isValidPartyLine(line) && !containsAny(lower, sellerRejectWords) {
				sellerLines = append(sellerLines, line)
			}
		case partyBuyer:
			if len(buyerLines) < 5 && isValidPartyLine(line) && !containsAny(lower, buyerRejectWords) {
				buyerLines = append(buyerLines, line)
			}
		}
	}

	if len(sellerLines) == 0 && len(headerLines) > 0 {
		if len(headerLines) > 4 {
			headerLines = headerLines[:4]
		}
		sellerLines = headerLines
	}

	rec.SellerName, rec.SellerAddress = assembleParty(sellerLines)
	rec.BuyerName, rec.BuyerAddress = assembleParty(buyerLines)
}

// assembleParty takes accumulated section lines: the first is the party name,
// up to three further lines (deduplicated against the name) join into the
// address.
func assembleParty(lines []string) (name, address string) {
	if len(lines) == 0 {
		return "", ""
	}
	name = lines[0]

	var addr []string
	end := len(lines)
	if end > 4 {
		end = 4
	}
	for _, l := range lines[1:end] {
		if !strings.EqualFold(l, name) {
			addr = append(addr, l)
		}
	}
	return name, strings.Join(addr, ", ")
}
