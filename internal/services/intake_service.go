package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"acqua/internal/core"
	"acqua/internal/metrics"
)

// LogResult is the composed response of one successful intake log.
type LogResult struct {
	TodayTotalMl    int64
	DailyGoalMl     int64
	ProgressPercent float64
	Feedback        string
}

// WeeklySummary pairs the trailing-week total with its fixed seven-day
// average.
type WeeklySummary struct {
	TotalMl       int64
	AveragePerDay float64
}

// IntakeService records intake events and serves the aggregated read
// API. The advisory call and the event publish are best-effort: once the
// event is durably appended the operation cannot fail anymore.
type IntakeService struct {
	store     Store
	advisor   Advisor
	publisher EventPublisher
	now       func() time.Time
}

func NewIntakeService(store Store, advisor Advisor, publisher EventPublisher) *IntakeService {
	return &IntakeService{
		store:     store,
		advisor:   advisor,
		publisher: publisher,
		now:       time.Now,
	}
}

// Log validates and appends one intake event, then computes the fresh
// daily state. It fails only with core.ErrInvalidDate or
// core.ErrUserNotFound, both before any store mutation.
func (s *IntakeService) Log(ctx context.Context, username string, amountMl int64, date string) (LogResult, error) {
	key, err := core.ParseDateKey(date)
	if err != nil {
		return LogResult{}, err
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return LogResult{}, err
	}

	if _, err := s.store.CreateIntake(ctx, user.ID, amountMl, key); err != nil {
		return LogResult{}, fmt.Errorf("append intake: %w", err)
	}
	metrics.IntakesLogged.Inc()

	events, err := s.store.ListIntakeByUser(ctx, user.ID)
	if err != nil {
		return LogResult{}, fmt.Errorf("read intake events: %w", err)
	}

	todayTotal := core.TodayTotal(events, s.now())

	// The advisory call is synchronous but bounded by the client timeout;
	// its failure text rides along in the response instead of aborting a
	// write that already happened.
	feedbackText := s.advisor.Advise(ctx, todayTotal, user.DailyGoalMl)

	s.publishLogged(ctx, username, amountMl, key, todayTotal)

	return LogResult{
		TodayTotalMl:    todayTotal,
		DailyGoalMl:     user.DailyGoalMl,
		ProgressPercent: core.ProgressPercent(todayTotal, user.DailyGoalMl),
		Feedback:        feedbackText,
	}, nil
}

// History returns the user's intake events, newest day first. Unknown
// usernames resolve to an empty history, matching the read-path policy
// that missing data is zero, never an error.
func (s *IntakeService) History(ctx context.Context, username string) ([]core.IntakeEvent, error) {
	events, _, err := s.eventsFor(ctx, username)
	return events, err
}

// DailyTotal returns today's consumed total.
func (s *IntakeService) DailyTotal(ctx context.Context, username string) (int64, error) {
	events, _, err := s.eventsFor(ctx, username)
	if err != nil {
		return 0, err
	}
	return core.TodayTotal(events, s.now()), nil
}

// Weekly returns the trailing-week total and per-day average.
func (s *IntakeService) Weekly(ctx context.Context, username string) (WeeklySummary, error) {
	events, _, err := s.eventsFor(ctx, username)
	if err != nil {
		return WeeklySummary{}, err
	}
	now := s.now()
	return WeeklySummary{
		TotalMl:       core.WeeklyTotal(events, now),
		AveragePerDay: core.WeeklyAverage(events, now),
	}, nil
}

// MonthlyTotal returns the current-month consumed total.
func (s *IntakeService) MonthlyTotal(ctx context.Context, username string) (int64, error) {
	events, _, err := s.eventsFor(ctx, username)
	if err != nil {
		return 0, err
	}
	return core.MonthlyTotal(events, s.now()), nil
}

// WeeklyChart returns per-day buckets for the trailing week, ascending.
func (s *IntakeService) WeeklyChart(ctx context.Context, username string) ([]core.DayTotal, error) {
	events, _, err := s.eventsFor(ctx, username)
	if err != nil {
		return nil, err
	}
	return core.WeeklyChart(events, s.now()), nil
}

func (s *IntakeService) eventsFor(ctx context.Context, username string) ([]core.IntakeEvent, core.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.User{}, nil
		}
		return nil, core.User{}, fmt.Errorf("get user: %w", err)
	}

	events, err := s.store.ListIntakeByUser(ctx, user.ID)
	if err != nil {
		return nil, core.User{}, fmt.Errorf("list intake events: %w", err)
	}
	return events, user, nil
}

func (s *IntakeService) publishLogged(ctx context.Context, username string, amountMl int64, date core.DateKey, todayTotal int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishIntakeLogged(ctx, username, amountMl, date, todayTotal); err != nil {
		// Intake is saved locally; a broker failure must not surface.
		slog.ErrorContext(ctx, "Failed to publish intake logged message",
			"component", "intake",
			"username", username,
			"error", err)
	}
}
