// Package catalog holds the static withholding-tax rule catalog and the
// classifier that selects the rule applying to a transaction.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

// Catalog is an ordered, read-only set of withholding-tax rules. It is
// authored once at startup and never mutated, so concurrent readers need no
// locking.
type Catalog struct {
	rules []model.TaxRule
}

// New builds a catalog from the given rules, ordered by descending priority.
func New(rules []model.TaxRule) (*Catalog, error) {
	for _, r := range rules {
		if r.BaseRatePercent.LessThanOrEqual(decimal.Zero) || r.BaseRatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: rule %s base rate %s outside (0, 100]",
				common.ErrInvalidConfig, r.Code, r.BaseRatePercent)
		}
		if r.AppliesTo == nil {
			return nil, fmt.Errorf("%w: rule %s has no predicate", common.ErrInvalidConfig, r.Code)
		}
	}

	ordered := make([]model.TaxRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	return &Catalog{rules: ordered}, nil
}

// Default returns the seed rule catalog. The set is intentionally bounded:
// it covers the common PPh withholding articles and is meant to be extended,
// not to be legally exhaustive.
func Default() *Catalog {
	rules := []model.TaxRule{
		{
			Code:            "PPH4-2-RENT",
			DisplayName:     "PPh Final Pasal 4 ayat (2)",
			LegalBasis:      "final tax on land and building rental",
			BaseRatePercent: decimal.NewFromInt(10),
			Penalty:         model.AdditivePercent(decimal.NewFromInt(10)),
			AppliesTo:       isPropertyRental,
			Priority:        100,
		},
		{
			Code:            "PPH23-SVC",
			DisplayName:     "PPh Pasal 23",
			LegalBasis:      "services and non-property rental paid to a legal entity",
			BaseRatePercent: decimal.NewFromInt(2),
			Penalty:         model.MultiplicativeFactor(decimal.NewFromInt(2)),
			AppliesTo: func(p model.CounterpartyProfile, _ []model.LineItem) bool {
				return p.Type == model.CounterpartyEntity
			},
			Priority: 50,
		},
		{
			Code:            "PPH21-SVC",
			DisplayName:     "PPh Pasal 21",
			LegalBasis:      "services performed by an individual",
			BaseRatePercent: decimal.RequireFromString("2.5"),
			Penalty:         model.MultiplicativeFactor(decimal.RequireFromString("1.2")),
			AppliesTo: func(p model.CounterpartyProfile, _ []model.LineItem) bool {
				return p.Type == model.CounterpartyIndividual
			},
			Priority: 50,
		},
	}

	c, err := New(rules)
	if err != nil {
		// The seed catalog is static; a defect here is a programming error.
		panic(err)
	}
	return c
}

// Rules returns the catalog rules in evaluation order.
func (c *Catalog) Rules() []model.TaxRule {
	return c.rules
}

// Classify selects the rule applying to the extracted items and counterparty
// profile. Rules are evaluated in descending priority; the first accepting
// rule wins. A tie between equally specific accepting rules is logged and
// resolved in favor of the first, never silently.
func (c *Catalog) Classify(profile model.CounterpartyProfile, items []model.LineItem) (model.TaxRule, error) {
	var matches []model.TaxRule
	for _, rule := range c.rules {
		if rule.AppliesTo(profile, items) {
			matches = append(matches, rule)
		}
	}

	if len(matches) == 0 {
		return model.TaxRule{}, fmt.Errorf("%w: counterparty %s, %d items",
			common.ErrNoRuleMatched, profile.Type, len(items))
	}

	if len(matches) > 1 && matches[0].Priority == matches[1].Priority {
		slog.Warn("ambiguous rule match, first by priority wins",
			"selected", matches[0].Code,
			"also_matched", matches[1].Code)
	}

	return matches[0], nil
}

// Rent words paired with a property word identify land/building rental, the
// named category carved out from generic service withholding.
var (
	rentWords = []string{
		"sewa", "rent", "rental", "lease",
	}
	propertyWords = []string{
		"gedung", "tanah", "bangunan", "ruang", "kantor", "gudang", "rumah",
		"building", "land", "office", "room", "space", "warehouse", "house", "apartment",
	}
)

func isPropertyRental(_ model.CounterpartyProfile, items []model.LineItem) bool {
	for _, item := range items {
		if !item.Taxable {
			continue
		}
		label := strings.ToLower(item.Label)
		if containsAny(label, rentWords) && containsAny(label, propertyWords) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
