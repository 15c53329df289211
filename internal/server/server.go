// Package server exposes the determination engine over HTTP. The engine is
// transport-agnostic; this package owns the request/response mapping and
// nothing else.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/engine"
	"github.com/wirz-id/wirz/internal/model"
	"github.com/wirz-id/wirz/internal/storage"
)

// InteractionLog records determination outcomes. Satisfied by
// storage.SQLiteStorage; nil disables persistence.
type InteractionLog interface {
	RecordInteraction(ctx context.Context, rec storage.Interaction) (string, error)
}

// Server routes HTTP requests to the determination engine.
type Server struct {
	engine *engine.Engine
	log    InteractionLog
	router *chi.Mux
}

// New creates a server around the engine. log may be nil.
func New(eng *engine.Engine, log InteractionLog) *Server {
	s := &Server{engine: eng, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/calculate", s.handleCalculate)

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type calculateRequest struct {
	FormData *model.FormData `json:"formData"`
	Language string          `json:"language"`
}

type calculateResponse struct {
	TaxType        string      `json:"taxType"`
	RatePercentage json.Number `json:"ratePercentage"`
	TaxBase        json.Number `json:"taxBase"`
	TaxAmount      json.Number `json:"taxAmount"`
	Explanation    string      `json:"explanation"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON body"})
		return
	}
	if req.FormData == nil || req.Language == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "missing formData or language in request body"})
		return
	}

	det, err := s.engine.Determine(r.Context(), *req.FormData, req.Language)
	if err != nil {
		s.recordFailure(r.Context(), *req.FormData, req.Language, err)

		status := http.StatusInternalServerError
		if common.IsValidation(err) {
			status = http.StatusBadRequest
		}
		respondJSON(w, status, errorResponse{
			Message: common.UserMessage(err, "tax analysis failed"),
		})
		return
	}

	s.recordSuccess(r.Context(), *req.FormData, req.Language, det)

	respondJSON(w, http.StatusOK, calculateResponse{
		TaxType:        det.TaxType,
		RatePercentage: json.Number(det.RatePercentage.String()),
		TaxBase:        json.Number(det.TaxBase.String()),
		TaxAmount:      json.Number(det.TaxAmount.String()),
		Explanation:    det.Explanation,
	})
}

func (s *Server) recordSuccess(ctx context.Context, form model.FormData, language string, det model.TaxDetermination) {
	common.LogInfo("tax calculation succeeded", common.Fields{
		"event":             "tax_calculation",
		"counterparty_type": form.CounterpartyType,
		"has_tax_id":        form.HasTaxID,
		"gross_up":          form.GrossUp,
		"language":          language,
		"tax_type":          det.TaxType,
		"rate":              det.RatePercentage.String(),
		"tax_base":          det.TaxBase.String(),
		"tax_amount":        det.TaxAmount.String(),
	})

	if s.log == nil {
		return
	}
	if _, err := s.log.RecordInteraction(ctx, storage.Interaction{
		CounterpartyType: form.CounterpartyType,
		HasTaxID:         form.HasTaxID,
		GrossUp:          form.GrossUp,
		Description:      form.Description,
		Language:         language,
		TaxType:          det.TaxType,
		RatePercentage:   det.RatePercentage.String(),
		TaxBase:          det.TaxBase.String(),
		TaxAmount:        det.TaxAmount.String(),
	}); err != nil {
		common.LogError(err, "failed to persist interaction", nil)
	}
}

func (s *Server) recordFailure(ctx context.Context, form model.FormData, language string, detErr error) {
	common.LogError(detErr, "tax calculation failed", common.Fields{
		"event":             "tax_calculation",
		"counterparty_type": form.CounterpartyType,
		"has_tax_id":        form.HasTaxID,
		"gross_up":          form.GrossUp,
		"language":          language,
	})

	if s.log == nil {
		return
	}
	if _, err := s.log.RecordInteraction(ctx, storage.Interaction{
		CounterpartyType: form.CounterpartyType,
		HasTaxID:         form.HasTaxID,
		GrossUp:          form.GrossUp,
		Description:      form.Description,
		Language:         language,
		Error:            detErr.Error(),
	}); err != nil {
		common.LogError(err, "failed to persist interaction", nil)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
