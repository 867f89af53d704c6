package extractor

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum WRatio score (0-100) accepted as a fuzzy
// keyword match. 65 is lenient enough to absorb common OCR noise ("Qnty",
// "Amout") without matching unrelated labels.
const DefaultThreshold = 65

// Matcher resolves noisy human labels to logical invoice fields. It is built
// once from the keyword table and is immutable afterwards, so a single
// instance can be shared across concurrent extractions.
type Matcher struct {
	threshold int
	variants  map[string][]string            // field -> declared variants
	reverse   map[string]string              // lowercased variant -> field
	order     []string                       // all variants, declared order
	valueRE   map[string][]*regexp.Regexp    // variant -> value capture patterns
}

// NewMatcher builds the reverse index and pre-compiles the per-variant value
// capture patterns.
func NewMatcher(threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	m := &Matcher{
		threshold: threshold,
		variants:  make(map[string][]string, len(keywordTable)),
		reverse:   make(map[string]string),
		valueRE:   make(map[string][]*regexp.Regexp),
	}

	for _, entry := range keywordTable {
		m.variants[entry.field] = entry.variants
		for _, v := range entry.variants {
			lower := strings.ToLower(v)
			if _, seen := m.reverse[lower]; !seen {
				m.reverse[lower] = entry.field
				m.order = append(m.order, lower)
			}
			if _, ok := m.valueRE[lower]; !ok {
				quoted := regexp.QuoteMeta(lower)
				m.valueRE[lower] = []*regexp.Regexp{
					regexp.MustCompile(quoted + `[\s:.\-]*[:\s]+([^\n]+)`),
					regexp.MustCompile(quoted + `[\s]*[:.\-=]+[\s]*([^\n]+)`),
				}
			}
		}
	}

	return m
}

// Threshold returns the configured minimum fuzzy score.
func (m *Matcher) Threshold() int { return m.threshold }

// MatchField returns the logical field a label refers to. Exact reverse-index
// hits win; otherwise the best WRatio score across all known variants is
// taken, provided both it and the full-string Ratio reach the threshold.
// WRatio alone scores substring windows of long labels against short
// variants, so an unrelated label can clear the threshold on a few shared
// characters; the full-string Ratio must agree before a fuzzy hit counts.
// Ties resolve to the variant declared first.
func (m *Matcher) MatchField(label string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return "", false
	}

	if field, ok := m.reverse[lower]; ok {
		return field, true
	}

	bestScore := 0
	bestVariant := ""
	for _, v := range m.order {
		score := fuzzy.WRatio(lower, v)
		if score <= bestScore || score < m.threshold {
			continue
		}
		if fuzzy.Ratio(lower, v) < m.threshold {
			continue
		}
		bestScore = score
		bestVariant = v
	}

	if bestVariant != "" {
		return m.reverse[bestVariant], true
	}
	return "", false
}

// IsMatch reports whether a label refers to a specific field: any variant of
// the field being a literal substring of the label counts, as does a fuzzy
// score at or above the threshold.
func (m *Matcher) IsMatch(label, field string, threshold int) bool {
	if threshold <= 0 {
		threshold = m.threshold
	}
	lower := strings.ToLower(strings.TrimSpace(label))

	for _, v := range m.variants[field] {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
		if fuzzy.WRatio(lower, strings.ToLower(v)) >= threshold {
			return true
		}
	}
	return false
}

// FindFieldValue searches text for "variant, separator, value" and returns
// the first non-empty capture. Variants are tried in declared order; the
// first one that yields a value wins.
func (m *Matcher) FindFieldValue(text, field string) string {
	lower := strings.ToLower(text)

	for _, v := range m.variants[field] {
		for _, re := range m.valueRE[strings.ToLower(v)] {
			match := re.FindStringSubmatch(lower)
			if len(match) > 1 {
				value := strings.TrimSpace(match[1])
				if value != "" {
					return value
				}
			}
		}
	}
	return ""
}
