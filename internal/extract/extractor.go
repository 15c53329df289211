package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

// Amount convention: whole currency units, with `.` or `,` accepted as a
// thousands separator only when every group after the first has exactly three
// digits ("10,000,000" and "10.000.000" both parse to 10000000). Fractional
// amounts are not recognized; a separator followed by fewer than three digits
// ends the number token.
var amountPattern = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})+|\d+`)

// Delimiter words that split a description into segments, alongside `,` and
// `;` characters that are not part of a number token.
var wordDelimiter = regexp.MustCompile(`(?i)\b(?:and|dan)\b`)

// Currency markers trimmed off the tail of a label.
var currencyMarkers = []string{"rp", "rp.", "idr", "senilai", "sebesar", "worth", "of"}

// defaultNonTaxableKeywords mark a line item as excluded from the tax base.
// Material costs, reimbursements and disbursements are pass-through amounts,
// not consideration for a service.
var defaultNonTaxableKeywords = []string{
	"material", "bahan",
	"reimburse", "reimbursement", "penggantian",
	"disbursement", "talangan",
	"at cost",
}

// RuleBasedExtractor is the deterministic line-item extractor. It segments
// the description on a fixed delimiter set, isolates the first currency-like
// token per segment, and classifies segments against a non-taxable keyword
// list.
type RuleBasedExtractor struct {
	nonTaxableKeywords []string
}

// NewRuleBased creates an extractor with the default non-taxable keyword set.
func NewRuleBased() *RuleBasedExtractor {
	return &RuleBasedExtractor{nonTaxableKeywords: defaultNonTaxableKeywords}
}

// NewRuleBasedWithKeywords creates an extractor with a custom non-taxable
// keyword set.
func NewRuleBasedWithKeywords(keywords []string) *RuleBasedExtractor {
	return &RuleBasedExtractor{nonTaxableKeywords: keywords}
}

// Extract parses the description into line items. Segments without a parsable
// amount are ignored as label-only noise; the extraction fails only when no
// monetary amount can be isolated anywhere in the description.
func (e *RuleBasedExtractor) Extract(_ context.Context, description string) ([]model.LineItem, error) {
	var items []model.LineItem

	for _, segment := range segments(description) {
		item, ok := e.parseSegment(segment)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q", common.ErrExtractionAmbiguous, description)
	}

	return items, nil
}

// segments splits the description on `,` and `;` outside number tokens, then
// on the words "and"/"dan".
func segments(description string) []string {
	numberSpans := amountPattern.FindAllStringIndex(description, -1)
	inNumber := func(pos int) bool {
		for _, span := range numberSpans {
			if pos >= span[0] && pos < span[1] {
				return true
			}
		}
		return false
	}

	var parts []string
	start := 0
	for i := 0; i < len(description); i++ {
		c := description[i]
		if (c == ',' || c == ';') && !inNumber(i) {
			parts = append(parts, description[start:i])
			start = i + 1
		}
	}
	parts = append(parts, description[start:])

	var out []string
	for _, part := range parts {
		for _, sub := range wordDelimiter.Split(part, -1) {
			if strings.TrimSpace(sub) != "" {
				out = append(out, sub)
			}
		}
	}
	return out
}

// parseSegment isolates the first amount in the segment; the text before it
// is the label. Segments without an amount report ok=false.
func (e *RuleBasedExtractor) parseSegment(segment string) (model.LineItem, bool) {
	loc := amountPattern.FindStringIndex(segment)
	if loc == nil {
		return model.LineItem{}, false
	}

	label := trimLabel(segment[:loc[0]])
	amount, err := parseAmount(segment[loc[0]:loc[1]])
	if err != nil {
		return model.LineItem{}, false
	}

	return model.LineItem{
		Label:   label,
		Amount:  amount,
		Taxable: !e.isNonTaxable(label),
	}, true
}

func (e *RuleBasedExtractor) isNonTaxable(label string) bool {
	lower := strings.ToLower(label)
	for _, kw := range e.nonTaxableKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// trimLabel cleans whitespace, punctuation and trailing currency markers.
func trimLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ":-–")
	s = strings.TrimSpace(s)

	fields := strings.Fields(s)
	for len(fields) > 0 {
		last := strings.ToLower(fields[len(fields)-1])
		trimmed := false
		for _, marker := range currencyMarkers {
			if last == marker {
				fields = fields[:len(fields)-1]
				trimmed = true
				break
			}
		}
		if !trimmed {
			break
		}
	}
	return strings.Join(fields, " ")
}

// parseAmount converts a matched number token to a decimal, stripping
// thousands separators.
func parseAmount(token string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", ".", "").Replace(token)
	return decimal.NewFromString(cleaned)
}
