// Package api exposes plan generation, quiz analysis and syllabus presets
// over HTTP and websocket.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/p-n-ai/edupilot/internal/curriculum"
	"github.com/p-n-ai/edupilot/internal/events"
	"github.com/p-n-ai/edupilot/internal/platform/apperr"
	"github.com/p-n-ai/edupilot/internal/roadmap"
	"github.com/p-n-ai/edupilot/internal/skillgap"
	"github.com/p-n-ai/edupilot/internal/usage"
)

const (
	maxBodyBytes = 1 << 20
	readyTimeout = 3 * time.Second
)

// Quota routes.
const (
	routeRoadmap = "roadmap"
	routeAnalyze = "analyze"
)

// HealthChecker is implemented by backing services checked on /readyz.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps holds the services the handlers use. Generator and Analyzer are
// required; the rest fall back to no-ops when nil.
type Deps struct {
	Generator *roadmap.Generator
	Analyzer  *skillgap.Analyzer
	Syllabi   *curriculum.Loader
	Events    events.EventLogger
	Quota     *usage.Quota
	Checks    map[string]HealthChecker
}

// Server serves the HTTP API.
type Server struct {
	deps Deps
}

// New creates a Server.
func New(deps Deps) *Server {
	if deps.Events == nil {
		deps.Events = events.NopEventLogger{}
	}
	return &Server{deps: deps}
}

// Handler returns the router with every endpoint registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /health", handleRunning)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	mux.HandleFunc("POST /generate-roadmap", s.handleGenerateRoadmap)
	mux.HandleFunc("POST /generate-roadmap/xlsx", s.handleGenerateRoadmapXLSX)
	mux.HandleFunc("GET /ws/roadmap", s.handleRoadmapSocket)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)

	mux.HandleFunc("GET /syllabi", s.handleListSyllabi)
	mux.HandleFunc("GET /syllabi/{id}", s.handleGetSyllabus)
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleRunning(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "running"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	for name, check := range s.deps.Checks {
		if err := check.HealthCheck(ctx); err != nil {
			slog.Warn("readiness check failed", "dependency", name, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  name + ": " + err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// allow applies the daily quota. Tracker failures are logged and the request
// goes through.
func (s *Server) allow(ctx context.Context, route, client string) error {
	if s.deps.Quota == nil {
		return nil
	}
	_, err := s.deps.Quota.Allow(ctx, route, client)
	if err == nil || errors.Is(err, usage.ErrQuotaExceeded) {
		return err
	}
	slog.Warn("usage tracking failed", "route", route, "error", err)
	return nil
}

func (s *Server) logEvent(ctx context.Context, eventType string, data map[string]any) {
	if err := s.deps.Events.LogEvent(ctx, events.Event{Type: eventType, Data: data}); err != nil {
		slog.Warn("failed to log event", "type", eventType, "error", err)
	}
}

// readBody reads a size-limited request body and validates it. Callers charge
// the quota only after this succeeds.
func readBody(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &apperr.ValidationError{Message: "request body too large or unreadable", Err: err}
	}
	if err := validateBody(schema, body); err != nil {
		return nil, err
	}
	return body, nil
}

// clientID identifies the caller for quota purposes.
func clientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type errorBody struct {
	Detail string `json:"detail"`
}

// writeError maps an error to its HTTP status. prefix labels internal
// failures, e.g. "Roadmap generation failed". Only InternalError causes are
// echoed to the client; anything untyped is reported generically.
func writeError(w http.ResponseWriter, err error, prefix string) {
	switch {
	case apperr.IsValidation(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: err.Error()})
	case errors.Is(err, usage.ErrQuotaExceeded):
		writeJSON(w, http.StatusTooManyRequests, errorBody{Detail: "daily request limit reached"})
	case apperr.IsInternal(err):
		slog.Error(strings.ToLower(prefix), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: prefix + ": " + err.Error()})
	default:
		slog.Error(strings.ToLower(prefix), "error", err, "kind", "unexpected")
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: prefix + ": internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
