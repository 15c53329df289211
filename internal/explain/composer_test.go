package explain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirz-id/wirz/internal/model"
)

func testRule() model.TaxRule {
	return model.TaxRule{
		Code:            "PPH23-SVC",
		DisplayName:     "PPh Pasal 23",
		LegalBasis:      "services and non-property rental paid to a legal entity",
		BaseRatePercent: decimal.NewFromInt(2),
	}
}

func TestComposer_PlainEnglish(t *testing.T) {
	composer := NewComposer()

	got, err := composer.Compose(Input{
		Rule:     testRule(),
		Rate:     decimal.NewFromInt(2),
		Base:     decimal.NewFromInt(10000000),
		Amount:   decimal.NewFromInt(200000),
		Excluded: decimal.NewFromInt(5000000),
		Net:      decimal.NewFromInt(10000000),
		Language: model.LanguageEN,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "PPh Pasal 23")
	assert.Contains(t, got, "2%")
	assert.Contains(t, got, "10,000,000")
	assert.Contains(t, got, "5,000,000")
	assert.Contains(t, got, "200,000")
	assert.NotContains(t, got, "NPWP", "no penalty note without a penalty")
}

func TestComposer_PenaltyNote(t *testing.T) {
	composer := NewComposer()

	got, err := composer.Compose(Input{
		Rule:           testRule(),
		Rate:           decimal.NewFromInt(4),
		PenaltyApplied: true,
		Base:           decimal.NewFromInt(1000000),
		Amount:         decimal.NewFromInt(40000),
		Net:            decimal.NewFromInt(1000000),
		Language:       model.LanguageEN,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "NPWP/NIK")
	assert.Contains(t, got, "4%")
}

func TestComposer_GrossUpEnglish(t *testing.T) {
	composer := NewComposer()

	got, err := composer.Compose(Input{
		Rule:     testRule(),
		Rate:     decimal.NewFromInt(2),
		Base:     decimal.NewFromInt(10000000),
		Amount:   decimal.NewFromInt(200000),
		Net:      decimal.NewFromInt(9800000),
		GrossUp:  true,
		Language: model.LanguageEN,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "9,800,000")
	assert.Contains(t, got, "10,000,000")
	assert.Contains(t, got, "net received")
}

func TestComposer_Indonesian(t *testing.T) {
	composer := NewComposer()

	got, err := composer.Compose(Input{
		Rule:           testRule(),
		Rate:           decimal.NewFromInt(4),
		PenaltyApplied: true,
		Base:           decimal.NewFromInt(10000000),
		Amount:         decimal.NewFromInt(400000),
		Excluded:       decimal.NewFromInt(2000000),
		Net:            decimal.NewFromInt(10000000),
		Language:       model.LanguageID,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "PPh Pasal 23")
	assert.Contains(t, got, "10.000.000")
	assert.Contains(t, got, "2.000.000")
	assert.Contains(t, got, "DPP")
	assert.Contains(t, got, "NPWP/NIK")
	assert.Contains(t, got, "badan hukum", "localized legal basis")
}

func TestComposer_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	composer := NewComposer()

	got, err := composer.Compose(Input{
		Rule:     testRule(),
		Rate:     decimal.NewFromInt(2),
		Base:     decimal.NewFromInt(1000000),
		Amount:   decimal.NewFromInt(20000),
		Net:      decimal.NewFromInt(1000000),
		Language: model.Language("fr"),
	})
	require.NoError(t, err)
	assert.Contains(t, got, "applies")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		lang  model.Language
		want  string
	}{
		{"10000000", model.LanguageEN, "10,000,000"},
		{"10000000", model.LanguageID, "10.000.000"},
		{"100", model.LanguageEN, "100"},
		{"1000", model.LanguageEN, "1,000"},
		{"123456789", model.LanguageID, "123.456.789"},
		{"1234.56", model.LanguageEN, "1,234.56"},
		{"1234.56", model.LanguageID, "1.234,56"},
		{"-5000", model.LanguageEN, "-5,000"},
		{"0", model.LanguageEN, "0"},
	}

	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.value), tt.lang)
		assert.Equal(t, tt.want, got, "%s (%s)", tt.value, tt.lang)
	}
}
