// Package engine implements the core withholding-tax determination engine:
// extraction, base computation, rule classification, rate resolution,
// gross-up inversion and explanation assembly for a single request.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/catalog"
	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/explain"
	"github.com/wirz-id/wirz/internal/extract"
	"github.com/wirz-id/wirz/internal/model"
)

// Engine orchestrates a tax determination. It holds no per-request state:
// the catalog is read-only after construction and every call is independent,
// so an Engine is safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	extractor extract.Extractor
	composer  *explain.Composer
}

// New creates a determination engine from its collaborators.
func New(cat *catalog.Catalog, extractor extract.Extractor) *Engine {
	return &Engine{
		catalog:   cat,
		extractor: extractor,
		composer:  explain.NewComposer(),
	}
}

// Determine runs the full pipeline for one request. All failures are
// deterministic for a fixed input and are never retried.
func (e *Engine) Determine(ctx context.Context, form model.FormData, language string) (model.TaxDetermination, error) {
	lang, profile, err := validate(form, language)
	if err != nil {
		return model.TaxDetermination{}, err
	}

	items, err := e.extractor.Extract(ctx, form.Description)
	if err != nil {
		return model.TaxDetermination{}, fmt.Errorf("extraction failed: %w", err)
	}

	raw, err := ComputeRawBase(items)
	if err != nil {
		return model.TaxDetermination{}, err
	}

	rule, err := e.catalog.Classify(profile, items)
	if err != nil {
		return model.TaxDetermination{}, err
	}

	rate, err := ResolveRate(rule, profile)
	if err != nil {
		return model.TaxDetermination{}, err
	}

	base := raw.Base
	var amount decimal.Decimal
	if form.GrossUp {
		result, grossErr := GrossUp(raw.Base, rate)
		if grossErr != nil {
			return model.TaxDetermination{}, grossErr
		}
		base = result.GrossBase
		amount = result.TaxAmount
	} else {
		amount = WithholdPlain(base, rate)
	}

	explanation, err := e.composer.Compose(explain.Input{
		Rule:           rule,
		Rate:           rate,
		PenaltyApplied: !profile.HasTaxID && rule.Penalty.Kind != model.PenaltyNone,
		Base:           base,
		Amount:         amount,
		Excluded:       raw.Excluded,
		Net:            raw.Base,
		GrossUp:        form.GrossUp,
		Language:       lang,
	})
	if err != nil {
		return model.TaxDetermination{}, err
	}

	slog.Debug("determination complete",
		"rule", rule.Code,
		"rate", rate.String(),
		"base", base.String(),
		"amount", amount.String(),
		"gross_up", form.GrossUp)

	return model.TaxDetermination{
		TaxType:        rule.DisplayName,
		RatePercentage: rate,
		TaxBase:        base,
		TaxAmount:      amount,
		Explanation:    explanation,
	}, nil
}

// validate checks the request fields the engine requires. Failures here are
// caller errors, distinct from engine-internal failures.
func validate(form model.FormData, language string) (model.Language, model.CounterpartyProfile, error) {
	if strings.TrimSpace(form.Description) == "" {
		return "", model.CounterpartyProfile{}, fmt.Errorf("%w: description is required", common.ErrValidation)
	}

	ctype, err := model.ParseCounterpartyType(form.CounterpartyType)
	if err != nil {
		return "", model.CounterpartyProfile{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	lang, err := model.ParseLanguage(language)
	if err != nil {
		return "", model.CounterpartyProfile{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	return lang, model.CounterpartyProfile{Type: ctype, HasTaxID: form.HasTaxID}, nil
}
