package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"coldreach/internal/pipeline"
	"coldreach/internal/store"
	"coldreach/internal/validate"
)

type Server struct {
	orchestrator *pipeline.Orchestrator
	history      *store.History
	logger       *zap.Logger
}

// New wires the HTTP adapter. history may be nil when request bookkeeping
// is disabled.
func New(orchestrator *pipeline.Orchestrator, history *store.History, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{orchestrator: orchestrator, history: history, logger: logger}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/outreach", s.handleOutreach)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOutreach(w http.ResponseWriter, r *http.Request) {
	req, err := validate.Parse(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "invalid_request",
			"message": err.Error(),
		})
		return
	}

	out, err := s.orchestrator.Process(r.Context(), req.Prospect, req.Signals)
	if err != nil {
		var failure *pipeline.Failure
		status := http.StatusInternalServerError
		if errors.As(err, &failure) && failure.Code == pipeline.CodeTimeout {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, failure)
		return
	}

	if s.history != nil {
		rec := store.Record{
			ID:             out.Metadata.RequestID,
			Company:        req.Prospect.CompanyName,
			Confidence:     string(out.Confidence),
			FollowUpTiming: out.FollowUpTiming,
			CreatedAt:      out.Metadata.ProcessedAt,
		}
		if err := s.history.Add(r.Context(), rec); err != nil {
			s.logger.Warn("failed to record request history", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
