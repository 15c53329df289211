package model

import "github.com/shopspring/decimal"

// PenaltyKind selects how a rule adjusts its rate when the counterparty has
// no registered tax ID.
type PenaltyKind string

// Penalty kind constants.
const (
	PenaltyNone           PenaltyKind = "none"
	PenaltyAdditive       PenaltyKind = "additive"
	PenaltyMultiplicative PenaltyKind = "multiplicative"
)

// PenaltyPolicy describes the rate adjustment applied when the counterparty
// lacks an NPWP/NIK. The zero value means no penalty.
type PenaltyPolicy struct {
	Kind  PenaltyKind
	Value decimal.Decimal // percentage points for additive, factor for multiplicative
}

// NoPenalty returns a policy that leaves the base rate unchanged.
func NoPenalty() PenaltyPolicy {
	return PenaltyPolicy{Kind: PenaltyNone}
}

// AdditivePercent returns a policy adding p percentage points to the base rate.
func AdditivePercent(p decimal.Decimal) PenaltyPolicy {
	return PenaltyPolicy{Kind: PenaltyAdditive, Value: p}
}

// MultiplicativeFactor returns a policy multiplying the base rate by f.
func MultiplicativeFactor(f decimal.Decimal) PenaltyPolicy {
	return PenaltyPolicy{Kind: PenaltyMultiplicative, Value: f}
}

// Apply computes the penalized rate from a base rate.
func (p PenaltyPolicy) Apply(baseRate decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case PenaltyAdditive:
		return baseRate.Add(p.Value)
	case PenaltyMultiplicative:
		return baseRate.Mul(p.Value)
	default:
		return baseRate
	}
}

// RulePredicate reports whether a rule applies to the given counterparty and
// extracted line items.
type RulePredicate func(profile CounterpartyProfile, items []LineItem) bool

// TaxRule is a single entry in the withholding-tax rule catalog.
// Rules are static: the catalog is authored at startup and never mutated,
// so concurrent reads need no synchronization.
type TaxRule struct {
	Code            string
	DisplayName     string
	LegalBasis      string
	BaseRatePercent decimal.Decimal // in (0, 100]
	Penalty         PenaltyPolicy
	AppliesTo       RulePredicate
	Priority        int // higher evaluated first; named categories outrank generic fallbacks
}
