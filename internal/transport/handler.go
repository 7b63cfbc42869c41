// Package transport exposes custody and verification operations over HTTP.
package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Deps are the services behind the HTTP API. Summaries may be nil when no
// verdict audit log is configured.
type Deps struct {
	Verifier  Verifier
	Custody   Custody
	Events    EventReader
	Topics    TopicResolver
	Summaries SummaryReader
	Health    map[string]HealthCheck
}

// Handler serves the v1 API.
type Handler struct {
	verifier  Verifier
	custody   Custody
	events    EventReader
	topics    TopicResolver
	summaries SummaryReader
	health    map[string]HealthCheck
	logger    *zap.Logger
}

func NewHandler(deps Deps, logger *zap.Logger) (*Handler, error) {
	switch {
	case deps.Verifier == nil:
		return nil, errors.New("verifier is required")
	case deps.Custody == nil:
		return nil, errors.New("custody service is required")
	case deps.Events == nil || deps.Topics == nil:
		return nil, errors.New("event reader and topic resolver are required")
	}
	return &Handler{
		verifier:  deps.Verifier,
		custody:   deps.Custody,
		events:    deps.Events,
		topics:    deps.Topics,
		summaries: deps.Summaries,
		health:    deps.Health,
		logger:    logger.Named("http"),
	}, nil
}

// Routes builds the router. CORS is applied by the caller.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/organizations/{orgID}/registry", h.handleCreateOrgRegistry)
		r.Post("/scans", h.handleVerifyScan)

		r.Post("/batches", h.handleProvisionBatch)
		r.Route("/batches/{batchID}", func(r chi.Router) {
			r.Post("/transfers", h.handleTransferBatch)
			r.Post("/delivery", h.handleConfirmDelivery)
			r.Post("/units", h.handleRegisterUnits)
			r.Post("/flags", h.handleReportFlag)
			r.Post("/recall", h.handleRecallBatch)
			r.Get("/events", h.handleBatchEvents)
			r.Get("/verification", h.handleVerifyBatch)
			r.Get("/verdicts/summary", h.handleVerdictSummary)
		})
	})
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}
