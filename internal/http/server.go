// Package http exposes the intake-tracking API over JSON.
package http

import (
	"context"
	"net/http"

	"acqua/internal/core"
	"acqua/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service surfaces consumed by the handlers. Concrete implementations
// live in internal/services; tests plug in doubles.
type (
	UserManager interface {
		Register(ctx context.Context, username string, dailyGoalMl int64) (core.User, error)
		UpdateGoal(ctx context.Context, username string, newGoalMl int64) error
	}

	IntakeRecorder interface {
		Log(ctx context.Context, username string, amountMl int64, date string) (services.LogResult, error)
		History(ctx context.Context, username string) ([]core.IntakeEvent, error)
		DailyTotal(ctx context.Context, username string) (int64, error)
		Weekly(ctx context.Context, username string) (services.WeeklySummary, error)
		MonthlyTotal(ctx context.Context, username string) (int64, error)
		WeeklyChart(ctx context.Context, username string) ([]core.DayTotal, error)
	}
)

type Server struct {
	http.Server
	users    UserManager
	intake   IntakeRecorder
	validate *validator.Validate
	ready    func(ctx context.Context) error
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. The ready func backs /readyz; nil means always ready.
func NewServer(addr string, users UserManager, intake IntakeRecorder, ready func(ctx context.Context) error) *Server {
	s := &Server{
		users:    users,
		intake:   intake,
		validate: validator.New(),
		ready:    ready,
	}

	r := chi.NewRouter()
	r.Use(s.withObservability)

	r.Post("/register", s.handleRegister)
	r.Post("/update-goal", s.handleUpdateGoal)
	r.Post("/log", s.handleLogIntake)
	r.Get("/history/{username}", s.handleHistory)
	r.Get("/daily/{username}", s.handleDaily)
	r.Get("/weekly/{username}", s.handleWeekly)
	r.Get("/monthly/{username}", s.handleMonthly)
	r.Get("/weekly-chart/{username}", s.handleWeeklyChart)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
