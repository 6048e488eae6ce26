package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hamed0406/uptimeping/internal/domain"
	apimw "github.com/hamed0406/uptimeping/internal/httpapi/middleware"
)

// Runner executes one pass over the configured targets.
type Runner interface {
	RunAll(ctx context.Context, targets []domain.Target) domain.RunOutcome
}

// Server exposes the checker over HTTP. Runs happen only when requested;
// nothing is scheduled.
type Server struct {
	Logger    *zap.Logger
	Runner    Runner
	Targets   []domain.Target
	AdminKeys []string
	Origins   []string

	runs singleflight.Group
}

func NewServer(l *zap.Logger, r Runner, targets []domain.Target) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l, Runner: r, Targets: targets}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	if len(s.Origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.Origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
			MaxAge:         300,
		}))
	} else {
		r.Use(cors.AllowAll().Handler)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/targets", s.handleListTargets)
	r.With(apimw.RequireKey(s.AdminKeys)).Post("/api/runs", s.handleRun)

	return r
}

type runResponse struct {
	AllHealthy bool            `json:"all_healthy"`
	ExitCode   int             `json:"exit_code"`
	Results    []domain.Result `json:"results"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	// Overlapping triggers share one pass so probes and alerts are not doubled.
	v, _, shared := s.runs.Do("run", func() (any, error) {
		ctx := context.WithoutCancel(r.Context())
		return s.Runner.RunAll(ctx, s.Targets), nil
	})
	out := v.(domain.RunOutcome)

	s.Logger.Info("api_run",
		zap.Bool("all_healthy", out.AllHealthy()),
		zap.Int("targets", len(out.Results)),
		zap.Bool("shared", shared),
	)

	results := out.Results
	if results == nil {
		results = []domain.Result{}
	}
	status := http.StatusOK
	if !out.AllHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, runResponse{
		AllHealthy: out.AllHealthy(),
		ExitCode:   out.ExitCode(),
		Results:    results,
	})
}

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	ts := s.Targets
	if ts == nil {
		ts = []domain.Target{}
	}
	writeJSON(w, http.StatusOK, ts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
