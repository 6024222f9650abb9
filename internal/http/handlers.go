package http

import (
	"errors"
	"log/slog"
	"net/http"

	"acqua/internal/core"

	"github.com/go-chi/chi/v5"
)

// Response payloads mirror the original route contract.
type (
	logResponse struct {
		Message         string  `json:"message"`
		TodayTotalMl    int64   `json:"today_total_ml"`
		DailyGoalMl     int64   `json:"daily_goal_ml"`
		ProgressPercent float64 `json:"progress_percent"`
		AIFeedback      string  `json:"ai_feedback"`
	}

	historyEntry struct {
		AmountMl int64  `json:"amount_ml"`
		Date     string `json:"date"`
	}
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.DailyGoal)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateUser):
			writeError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, core.ErrInvalidGoal):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.internalError(w, r, "register user", err)
		}
		return
	}

	slog.InfoContext(r.Context(), "User registered",
		"component", "http",
		"username", user.Username,
		"daily_goal_ml", user.DailyGoalMl)

	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalUpdateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.users.UpdateGoal(r.Context(), req.Username, req.NewGoal); err != nil {
		if errors.Is(err, core.ErrInvalidGoal) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.internalError(w, r, "update goal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal updated successfully"})
}

func (s *Server) handleLogIntake(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.intake.Log(r.Context(), req.Username, req.Amount, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "Invalid date format (YYYY-MM-DD)")
		case errors.Is(err, core.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			s.internalError(w, r, "log intake", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, logResponse{
		Message:         "Water logged successfully",
		TodayTotalMl:    res.TodayTotalMl,
		DailyGoalMl:     res.DailyGoalMl,
		ProgressPercent: res.ProgressPercent,
		AIFeedback:      res.Feedback,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	events, err := s.intake.History(r.Context(), username)
	if err != nil {
		s.internalError(w, r, "read history", err)
		return
	}

	history := make([]historyEntry, 0, len(events))
	for _, ev := range events {
		history = append(history, historyEntry{AmountMl: ev.AmountMl, Date: string(ev.Date)})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username": username,
		"history":  history,
	})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	total, err := s.intake.DailyTotal(r.Context(), username)
	if err != nil {
		s.internalError(w, r, "read daily total", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username":       username,
		"today_total_ml": total,
	})
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	summary, err := s.intake.Weekly(r.Context(), username)
	if err != nil {
		s.internalError(w, r, "read weekly total", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username":           username,
		"weekly_total_ml":    summary.TotalMl,
		"average_per_day_ml": summary.AveragePerDay,
	})
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	total, err := s.intake.MonthlyTotal(r.Context(), username)
	if err != nil {
		s.internalError(w, r, "read monthly total", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username":         username,
		"monthly_total_ml": total,
	})
}

func (s *Server) handleWeeklyChart(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	chart, err := s.intake.WeeklyChart(r.Context(), username)
	if err != nil {
		s.internalError(w, r, "read weekly chart", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username": username,
		"data":     chart,
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.ErrorContext(r.Context(), "Request failed",
		"component", "http",
		"operation", op,
		"error", err,
		"url", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "internal error")
}
