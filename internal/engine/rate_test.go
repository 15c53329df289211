package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

func TestResolveRate(t *testing.T) {
	rule := func(rate string, penalty model.PenaltyPolicy) model.TaxRule {
		return model.TaxRule{
			Code:            "TEST",
			BaseRatePercent: decimal.RequireFromString(rate),
			Penalty:         penalty,
		}
	}

	tests := []struct {
		name     string
		rule     model.TaxRule
		hasTaxID bool
		want     string
		wantErr  error
	}{
		{
			name:     "tax ID present leaves base rate unchanged",
			rule:     rule("2", model.MultiplicativeFactor(decimal.NewFromInt(2))),
			hasTaxID: true,
			want:     "2",
		},
		{
			name:     "multiplicative penalty doubles the rate",
			rule:     rule("2", model.MultiplicativeFactor(decimal.NewFromInt(2))),
			hasTaxID: false,
			want:     "4",
		},
		{
			name:     "twenty percent higher rule",
			rule:     rule("2.5", model.MultiplicativeFactor(decimal.RequireFromString("1.2"))),
			hasTaxID: false,
			want:     "3",
		},
		{
			name:     "additive penalty adds points",
			rule:     rule("10", model.AdditivePercent(decimal.NewFromInt(10))),
			hasTaxID: false,
			want:     "20",
		},
		{
			name:     "no penalty policy",
			rule:     rule("10", model.NoPenalty()),
			hasTaxID: false,
			want:     "10",
		},
		{
			name:     "penalized rate reaching 100 is invalid",
			rule:     rule("60", model.AdditivePercent(decimal.NewFromInt(40))),
			hasTaxID: false,
			wantErr:  common.ErrInvalidRate,
		},
		{
			name:     "penalized rate above 100 is invalid",
			rule:     rule("60", model.MultiplicativeFactor(decimal.NewFromInt(2))),
			hasTaxID: false,
			wantErr:  common.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRate(tt.rule, model.CounterpartyProfile{
				Type:     model.CounterpartyEntity,
				HasTaxID: tt.hasTaxID,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestResolveRate_PenaltyMonotonicity(t *testing.T) {
	// For any rule, the rate without a tax ID is never below the rate with
	// one.
	rules := []model.TaxRule{
		{Code: "A", BaseRatePercent: decimal.NewFromInt(2), Penalty: model.MultiplicativeFactor(decimal.NewFromInt(2))},
		{Code: "B", BaseRatePercent: decimal.RequireFromString("2.5"), Penalty: model.MultiplicativeFactor(decimal.RequireFromString("1.2"))},
		{Code: "C", BaseRatePercent: decimal.NewFromInt(10), Penalty: model.AdditivePercent(decimal.NewFromInt(10))},
		{Code: "D", BaseRatePercent: decimal.NewFromInt(15), Penalty: model.NoPenalty()},
	}

	for _, rule := range rules {
		withID, err := ResolveRate(rule, model.CounterpartyProfile{Type: model.CounterpartyEntity, HasTaxID: true})
		require.NoError(t, err, rule.Code)

		withoutID, err := ResolveRate(rule, model.CounterpartyProfile{Type: model.CounterpartyEntity, HasTaxID: false})
		require.NoError(t, err, rule.Code)

		assert.True(t, withoutID.GreaterThanOrEqual(withID),
			"rule %s: %s < %s", rule.Code, withoutID, withID)
	}
}
