package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

func TestComputeRawBase(t *testing.T) {
	item := func(amount int64, taxable bool) model.LineItem {
		return model.LineItem{Amount: decimal.NewFromInt(amount), Taxable: taxable}
	}

	tests := []struct {
		name         string
		items        []model.LineItem
		wantBase     int64
		wantExcluded int64
		wantErr      error
	}{
		{
			name:         "single taxable item",
			items:        []model.LineItem{item(10000000, true)},
			wantBase:     10000000,
			wantExcluded: 0,
		},
		{
			name:         "taxable and excluded items",
			items:        []model.LineItem{item(10000000, true), item(5000000, false)},
			wantBase:     10000000,
			wantExcluded: 5000000,
		},
		{
			name:         "multiple taxable items sum",
			items:        []model.LineItem{item(1000000, true), item(2000000, true), item(300000, false)},
			wantBase:     3000000,
			wantExcluded: 300000,
		},
		{
			name:    "only non-taxable items is reportable",
			items:   []model.LineItem{item(5000000, false)},
			wantErr: common.ErrNoTaxableAmount,
		},
		{
			name:    "zero-amount taxable item with excluded items",
			items:   []model.LineItem{item(0, true), item(5000000, false)},
			wantErr: common.ErrNoTaxableAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRawBase(tt.items)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.wantBase).Equal(got.Base),
				"base: want %d, got %s", tt.wantBase, got.Base)
			assert.True(t, decimal.NewFromInt(tt.wantExcluded).Equal(got.Excluded),
				"excluded: want %d, got %s", tt.wantExcluded, got.Excluded)
		})
	}
}

func TestComputeRawBase_NoItems(t *testing.T) {
	// The extractor already fails on empty extractions; an empty slice here
	// is not the all-excluded condition.
	got, err := ComputeRawBase(nil)
	require.NoError(t, err)
	assert.True(t, got.Base.IsZero())
}
