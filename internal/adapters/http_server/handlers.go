package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

const maxRequestBody = 64 << 10

// Planner is the part of app.Planner the handlers use.
type Planner interface {
	Plan(ctx context.Context, q domain.TripQuery) (*app.Plan, error)
}

type Handlers struct {
	P           Planner
	PlanTimeout time.Duration
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type planRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	NumDays     int    `json:"num_days"`
	Mode        string `json:"mode"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/plans", h.createPlan)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) createPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return
	}
	q, err := domain.NewTripQuery(req.Source, req.Destination, req.StartDate, req.NumDays, req.Mode)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid trip", err.Error())
		return
	}

	ctx := r.Context()
	if h.PlanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.PlanTimeout)
		defer cancel()
	}
	plan, err := h.P.Plan(ctx, q)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidQuery):
		writeProblem(w, http.StatusBadRequest, "Invalid trip", err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeProblem(w, http.StatusGatewayTimeout, "Planning timed out", err.Error())
		return
	default:
		log.Error().Err(err).Msg("plan failed")
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}

	body, err := json.Marshal(plan)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal plan")
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Plan-ID", plan.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write plan body")
	}
}
