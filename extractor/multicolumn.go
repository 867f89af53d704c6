package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/khuswant18/paddle-ocr/dto"
)

// Multicolumn OCR emits each table column as its own run of lines, so an item
// arrives as a product-description line plus nearby bare numeric lines. This
// strategy pairs those numerics back into (price, amount) and rebuilds the
// rows.

var bareNumberPattern = regexp.MustCompile(`^[\d,\.]+$`)

// Lines at or past one of these keywords belong to the totals/closing
// section, never to the item table.
var multicolumnStopKeywords = []string{
	"total sales", "grand total", "total amount", "less:",
	"vatable", "vat-exempt", "sales gross", "received the above",
	"thank you", "remarks",
}

var multicolumnSkipKeywords = []string{
	"total", "subtotal", "quantity", "description", "unit",
	"amount", "signature", "date:", "sold to", "terms",
	"unitprice", "remarks", "vatable", "vat-exempt", "less:",
	"add:", "tin:", "address", "business", "cardholder",
}

// Product-domain words that mark longer unstructured lines as item
// descriptions.
var productKeywords = []string{
	"candy", "jelly", "chocolate", "flavor",
	"biscuit", "gum", "powder", "fruit", "roll", "stick",
	"cup", "pop", "bubble", "yogurt", "mango", "orange",
	"strawberry", "milk", "cola", "sofee", "asstd",
}

var multicolumnCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bHY[\s({]?\d+`),
	regexp.MustCompile(`(?i)\bHY\s*\([A-Z]?\d+`),
}

type pricePair struct {
	priceIdx  int
	price     float64
	amountIdx int
	amount    float64
	qty       float64
}

// extractItemsMulticolumn reconstructs items from column-split OCR output:
// classify each line above the totals section as a product description or a
// bare monetary value, pair adjacent unused values into (price, amount) with
// an integral quantity, then assign pairs back to products by position.
func (e *Extractor) extractItemsMulticolumn(lines []string) []dto.LineItem {
	stopIdx := len(lines)
	for i, line := range lines {
		if containsAny(strings.ToLower(line), multicolumnStopKeywords) {
			stopIdx = i
			break
		}
	}

	var products []indexedValue // idx only; description in descriptions
	var descriptions []string
	var monetary []indexedValue

	for i, line := range lines {
		if i >= stopIdx {
			break
		}
		lower := strings.ToLower(line)
		if containsAny(lower, multicolumnSkipKeywords) {
			continue
		}

		if isProductLine(line, lower) {
			products = append(products, indexedValue{idx: i})
			descriptions = append(descriptions, line)
			continue
		}

		if bareNumberPattern.MatchString(line) {
			if v, ok := parseColumnNumber(line); ok && v >= 100 {
				monetary = append(monetary, indexedValue{idx: i, val: v})
			}
		}
	}

	pairs, usedLines := pairPrices(monetary)
	return assignPairs(descriptions, products, pairs, monetary, usedLines)
}

// isProductLine reports whether a line is an item description: it bears a
// product-code shape, or is longer than 15 chars and mentions a known
// product word.
func isProductLine(line, lower string) bool {
	for _, re := range multicolumnCodePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return len(line) > 15 && containsAny(lower, productKeywords)
}

// parseColumnNumber normalizes a bare numeric line, including the
// "1.940.00"-style grouped form where dots separate both thousands and cents.
func parseColumnNumber(line string) (float64, bool) {
	clean := strings.ReplaceAll(line, ",", "")
	if strings.Count(clean, ".") > 1 {
		parts := strings.Split(clean, ".")
		last := parts[len(parts)-1]
		if len(last) == 2 {
			clean = strings.Join(parts[:len(parts)-1], "") + "." + last
		} else {
			clean = strings.Join(parts, "")
		}
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// pairPrices pairs adjacent unused monetary lines within a 3-line window into
// (price, amount), larger value as amount. A pair is kept only when
// amount/price is an integer quantity in [1,100] to within 0.01.
func pairPrices(monetary []indexedValue) ([]pricePair, map[int]bool) {
	var pairs []pricePair
	used := make(map[int]bool)

	for i := 0; i+1 < len(monetary); i++ {
		a, b := monetary[i], monetary[i+1]
		if used[a.idx] || used[b.idx] {
			continue
		}
		if abs(b.idx-a.idx) > 3 {
			continue
		}

		price, amount := a, b
		if b.val < a.val {
			price, amount = b, a
		}
		if price.val <= 0 {
			continue
		}

		calcQty := amount.val / price.val
		rounded := math.Round(calcQty)
		if rounded < 1 || rounded > 100 {
			continue
		}
		if math.Abs(calcQty-rounded) >= 0.01 {
			continue
		}

		pairs = append(pairs, pricePair{
			priceIdx:  price.idx,
			price:     price.val,
			amountIdx: amount.idx,
			amount:    amount.val,
			qty:       rounded,
		})
		used[a.idx] = true
		used[b.idx] = true
	}

	return pairs, used
}

// assignPairs attaches (price, amount) pairs to product lines. With at least
// as many pairs as products, assignment is sequential in line order (columns
// read top to bottom keep row order). With fewer pairs, each product takes
// the nearest unused pair within 10 lines, preferring pairs entirely above
// the product; products left without a pair attach the nearest unused bare
// value within 5 lines as their amount.
func assignPairs(descriptions []string, products []indexedValue, pairs []pricePair, monetary []indexedValue, usedLines map[int]bool) []dto.LineItem {
	var items []dto.LineItem

	if len(pairs) >= len(products) {
		for i, desc := range descriptions {
			item := dto.LineItem{
				SrNo:        len(items) + 1,
				Description: desc,
				Quantity:    1,
			}
			if i < len(pairs) {
				item.Quantity = pairs[i].qty
				item.UnitPrice = pairs[i].price
				item.Amount = pairs[i].amount
			}
			items = append(items, item)
		}
		return items
	}

	usedPairs := make(map[int]bool)
	for pi, prod := range products {
		bestPair := -1
		bestDist := math.MaxInt32

		for j, pair := range pairs {
			if usedPairs[j] {
				continue
			}
			dist := abs(prod.idx - pair.priceIdx)
			if d := abs(prod.idx - pair.amountIdx); d < dist {
				dist = d
			}
			if pair.priceIdx < prod.idx && pair.amountIdx < prod.idx {
				dist--
			}
			if dist < bestDist && dist <= 10 {
				bestDist = dist
				bestPair = j
			}
		}

		if bestPair >= 0 {
			usedPairs[bestPair] = true
			pair := pairs[bestPair]
			items = append(items, dto.LineItem{
				SrNo:        len(items) + 1,
				Description: descriptions[pi],
				Quantity:    pair.qty,
				UnitPrice:   pair.price,
				Amount:      pair.amount,
			})
			continue
		}

		// No eligible pair: fall back to the nearest unused bare value.
		nearest := -1
		nearestDist := math.MaxInt32
		for mi, mv := range monetary {
			if usedLines[mv.idx] {
				continue
			}
			if d := abs(prod.idx - mv.idx); d <= 5 && d < nearestDist {
				nearestDist = d
				nearest = mi
			}
		}
		if nearest >= 0 {
			mv := monetary[nearest]
			usedLines[mv.idx] = true
			items = append(items, dto.LineItem{
				SrNo:        len(items) + 1,
				Description: descriptions[pi],
				Quantity:    1,
				UnitPrice:   mv.val,
				Amount:      mv.val,
			})
		}
	}

	return items
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
