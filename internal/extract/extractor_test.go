package extract

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

func TestRuleBasedExtractor_Extract(t *testing.T) {
	ctx := context.Background()

	item := func(label string, amount int64, taxable bool) model.LineItem {
		return model.LineItem{Label: label, Amount: decimal.NewFromInt(amount), Taxable: taxable}
	}

	tests := []struct {
		name        string
		description string
		want        []model.LineItem
		wantErr     error
	}{
		{
			name:        "single taxable item with grouped amount",
			description: "building rental fee 10,000,000",
			want:        []model.LineItem{item("building rental fee", 10000000, true)},
		},
		{
			name:        "taxable and non-taxable items split on comma",
			description: "building rental fee 10,000,000, material cost 5,000,000",
			want: []model.LineItem{
				item("building rental fee", 10000000, true),
				item("material cost", 5000000, false),
			},
		},
		{
			name:        "indonesian separators and keywords",
			description: "sewa gedung 10.000.000, biaya material 5.000.000",
			want: []model.LineItem{
				item("sewa gedung", 10000000, true),
				item("biaya material", 5000000, false),
			},
		},
		{
			name:        "word delimiter dan",
			description: "jasa konsultasi 2.000.000 dan penggantian transport 500.000",
			want: []model.LineItem{
				item("jasa konsultasi", 2000000, true),
				item("penggantian transport", 500000, false),
			},
		},
		{
			name:        "word delimiter and with semicolon",
			description: "consulting fee 2,000,000; reimbursement 150,000 and disbursement 50,000",
			want: []model.LineItem{
				item("consulting fee", 2000000, true),
				item("reimbursement", 150000, false),
				item("disbursement", 50000, false),
			},
		},
		{
			name:        "currency marker trimmed from label",
			description: "office rent Rp 7.500.000",
			want:        []model.LineItem{item("office rent", 7500000, true)},
		},
		{
			name:        "plain ungrouped amount",
			description: "cleaning service 750000",
			want:        []model.LineItem{item("cleaning service", 750000, true)},
		},
		{
			name:        "segments without amounts are ignored as noise",
			description: "per our agreement, building rental fee 10,000,000, thanks",
			want:        []model.LineItem{item("building rental fee", 10000000, true)},
		},
		{
			name:        "no amount anywhere",
			description: "building rental fee to be agreed",
			wantErr:     common.ErrExtractionAmbiguous,
		},
		{
			name:        "only punctuation and words",
			description: "sewa gedung, biaya material",
			wantErr:     common.ErrExtractionAmbiguous,
		},
	}

	extractor := NewRuleBased()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(ctx, tt.description)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Label, got[i].Label, "item %d label", i)
				assert.True(t, want.Amount.Equal(got[i].Amount),
					"item %d amount: want %s, got %s", i, want.Amount, got[i].Amount)
				assert.Equal(t, want.Taxable, got[i].Taxable, "item %d taxable", i)
			}
		})
	}
}

func TestRuleBasedExtractor_SeparatorConvention(t *testing.T) {
	ctx := context.Background()
	extractor := NewRuleBased()

	// A separator followed by fewer than three digits ends the number token;
	// fractional amounts are not recognized.
	items, err := extractor.Extract(ctx, "service fee 1,234,567")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.NewFromInt(1234567).Equal(items[0].Amount))

	items, err = extractor.Extract(ctx, "service fee 10,00")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(items[0].Amount))
}

func TestRuleBasedExtractor_CustomKeywords(t *testing.T) {
	ctx := context.Background()
	extractor := NewRuleBasedWithKeywords([]string{"ongkos kirim"})

	items, err := extractor.Extract(ctx, "jasa perbaikan 1.000.000, ongkos kirim 100.000")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Taxable)
	assert.False(t, items[1].Taxable)
}
