package extractor

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

var (
	numberGroupPattern   = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)`)
	trailingNumberStrip  = regexp.MustCompile(`\s+\d[\d,]*\.?\d*\s*$`)
	leadingQtyPattern    = regexp.MustCompile(`^(\d+)\s+`)
	unitInDescPattern    = regexp.MustCompile(`(?i)\b(cs|pcs?|box|kg|nos?|units?|ea)\b`)
	leadingQtyUnitStrip  = regexp.MustCompile(`(?i)^\d+\s+(?:cs|pcs?|box|kg|nos?|units?|ea)?\s*`)
)

type indexedValue struct {
	idx int
	val float64
}

// parseCodeLine recovers an item from a product-code line without clean
// columnar structure, e.g.
// "HY(302) Star Jelly Candy 120g 1x40x24s 2 990.00 1,980.00".
// Numeric tokens split into candidate quantities (integers under 200) and
// candidate monetary values (>= 100); the (rate, amount) pair whose quotient
// rounds to a consistent integer quantity with the smallest error wins.
func parseCodeLine(line string, srNo int) *dto.LineItem {
	tokens := numberGroupPattern.FindAllString(line, -1)
	if len(tokens) < 2 {
		return nil
	}

	values := make([]indexedValue, 0, len(tokens))
	for i, t := range tokens {
		v, ok := parseMoney(t)
		if !ok {
			return nil
		}
		values = append(values, indexedValue{i, v})
	}

	var potentialQtys, monetary []indexedValue
	for _, iv := range values {
		if iv.val < 200 && iv.val == math.Trunc(iv.val) {
			potentialQtys = append(potentialQtys, iv)
		}
		if iv.val >= 100 {
			monetary = append(monetary, iv)
		}
	}

	var qty, rate, amount float64
	if len(monetary) >= 2 {
		sorted := make([]indexedValue, len(monetary))
		copy(sorted, monetary)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].val < sorted[j].val })

		qty, rate, amount = resolveRateAmount(sorted)
	} else {
		sorted := make([]indexedValue, len(values))
		copy(sorted, values)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].val > sorted[j].val })

		amount = sorted[0].val
		rate = amount
		if len(sorted) > 1 {
			rate = sorted[1].val
		}
		qty = 1

		// A small integer token that reproduces the amount is the quantity.
		for _, iv := range potentialQtys {
			if iv.val >= 1 && rate > 0 && math.Abs(iv.val*rate-amount) < 1 {
				qty = math.Trunc(iv.val)
				break
			}
		}
	}

	desc := stripTrailingNumbers(line, 3)

	// The OCR'd amount loses to arithmetic when they disagree.
	if math.Abs(qty*rate-amount) > 1 {
		amount = qty * rate
	}

	if amount <= 0 || len(desc) <= 3 {
		return nil
	}
	return &dto.LineItem{
		SrNo:        srNo,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   rate,
		Amount:      amount,
	}
}

// resolveRateAmount searches all (rate, amount) pairs among the ascending
// monetary candidates for one where amount/rate rounds to an integer quantity
// in [1,200] with error under 1, preferring the smallest error. With no
// consistent triple, the largest value is the amount and the second largest
// the rate.
func resolveRateAmount(ascending []indexedValue) (qty, rate, amount float64) {
	bestErr := math.Inf(1)
	found := false

	for _, r := range ascending[:len(ascending)-1] {
		for _, a := range ascending {
			if a.val <= r.val {
				continue
			}
			rounded := math.Round(a.val / r.val)
			if rounded < 1 || rounded > 200 {
				continue
			}
			expected := rounded * r.val
			err := math.Abs(expected - a.val)
			if err < bestErr && err < 1 {
				bestErr = err
				qty, rate, amount = rounded, r.val, expected
				found = true
			}
		}
	}
	if found {
		return qty, rate, amount
	}

	amount = ascending[len(ascending)-1].val
	rate = amount
	if len(ascending) > 1 {
		rate = ascending[len(ascending)-2].val
	}
	qty = 1
	if rate > 0 {
		qty = math.Round(amount / rate)
	}
	return qty, rate, amount
}

// stripTrailingNumbers removes up to n trailing numeric groups, which are the
// rate/amount columns glued onto the description.
func stripTrailingNumbers(line string, n int) string {
	desc := line
	for i := 0; i < n; i++ {
		desc = trailingNumberStrip.ReplaceAllString(desc, "")
	}
	return strings.TrimSpace(desc)
}

// parseLooseProductLine handles ad-hoc product lines carrying a code but no
// recognizable column layout: the last monetary token is the amount, the
// second-to-last the rate, and a leading small integer the quantity.
func parseLooseProductLine(line string, srNo int) *dto.LineItem {
	tokens := numberGroupPattern.FindAllString(line, -1)
	if len(tokens) < 2 {
		return nil
	}

	var amounts []float64
	for _, t := range tokens {
		if v, ok := parseMoney(t); ok && v >= 10 {
			amounts = append(amounts, v)
		}
	}
	if len(amounts) < 1 {
		return nil
	}

	amount := amounts[len(amounts)-1]
	rate := amount
	if len(amounts) > 1 {
		rate = amounts[len(amounts)-2]
	}

	qty := 1.0
	if m := leadingQtyPattern.FindStringSubmatch(line); len(m) > 1 {
		if v, ok := parseMoney(m[1]); ok && v < 1000 {
			qty = v
		}
	}

	desc := stripTrailingNumbers(line, 3)

	unit := ""
	if m := unitInDescPattern.FindStringSubmatch(desc); len(m) > 1 {
		unit = strings.ToUpper(m[1])
	}
	if qty > 1 {
		desc = leadingQtyUnitStrip.ReplaceAllString(desc, "")
	}

	desc = strings.TrimSpace(desc)
	if amount <= 0 || len(desc) <= 3 {
		return nil
	}
	return &dto.LineItem{
		SrNo:        srNo,
		Description: desc,
		Quantity:    qty,
		Unit:        unit,
		UnitPrice:   rate,
		Amount:      amount,
	}
}
