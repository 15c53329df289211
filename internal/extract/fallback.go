package extract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/llm"
	"github.com/wirz-id/wirz/internal/model"
)

// FallbackExtractor wraps a deterministic primary extractor with an
// AI-assisted collaborator. The collaborator is consulted only when the
// primary cannot isolate any amount; its call is bounded by a timeout and
// abandoned when the enclosing request is canceled. Any collaborator failure
// surfaces the primary's deterministic error, never its own.
type FallbackExtractor struct {
	primary Extractor
	client  llm.Client
	timeout time.Duration
}

// DefaultFallbackTimeout bounds the collaborator call.
const DefaultFallbackTimeout = 15 * time.Second

// WithFallback wraps primary with an AI-assisted fallback. A nil client
// returns primary unchanged.
func WithFallback(primary Extractor, client llm.Client, timeout time.Duration) Extractor {
	if client == nil {
		return primary
	}
	if timeout <= 0 {
		timeout = DefaultFallbackTimeout
	}
	return &FallbackExtractor{
		primary: primary,
		client:  client,
		timeout: timeout,
	}
}

// Extract runs the primary extractor, deferring to the collaborator only on
// an ambiguous-extraction failure.
func (f *FallbackExtractor) Extract(ctx context.Context, description string) ([]model.LineItem, error) {
	items, err := f.primary.Extract(ctx, description)
	if err == nil || !errors.Is(err, common.ErrExtractionAmbiguous) {
		return items, err
	}

	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, aiErr := f.client.ExtractLineItems(callCtx, description)
	if aiErr != nil {
		common.LogError(aiErr, "AI-assisted extraction failed, surfacing deterministic error", common.Fields{
			"description_length": len(description),
		})
		return nil, err
	}

	converted := convertItems(resp.Items)
	if len(converted) == 0 {
		return nil, err
	}

	slog.Info("AI-assisted extraction recovered line items",
		"items", len(converted))
	return converted, nil
}

// convertItems validates provider items, dropping anything without a
// non-negative decimal amount.
func convertItems(items []llm.ExtractedItem) []model.LineItem {
	var out []model.LineItem
	for _, item := range items {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil || amount.IsNegative() {
			continue
		}
		out = append(out, model.LineItem{
			Label:   item.Label,
			Amount:  amount,
			Taxable: item.Taxable,
		})
	}
	return out
}
