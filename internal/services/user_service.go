package services

import (
	"context"
	"fmt"
	"log/slog"

	"acqua/internal/core"
)

// UserService manages registration and daily goal updates.
type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// Register creates a user with a daily goal. Fails with
// core.ErrDuplicateUser for an existing username (enforced by the store's
// uniqueness constraint) and core.ErrInvalidGoal for a non-positive goal.
func (s *UserService) Register(ctx context.Context, username string, dailyGoalMl int64) (core.User, error) {
	if err := (core.User{Username: username, DailyGoalMl: dailyGoalMl}).Validate(); err != nil {
		return core.User{}, err
	}

	user, err := s.store.CreateUser(ctx, username, dailyGoalMl)
	if err != nil {
		return core.User{}, err
	}
	return user, nil
}

// UpdateGoal replaces the user's daily goal. Unknown usernames update
// zero rows and still succeed; unlike registration there is no existence
// check on this path, only a log line that makes the no-op visible.
func (s *UserService) UpdateGoal(ctx context.Context, username string, newGoalMl int64) error {
	if err := (core.User{Username: username, DailyGoalMl: newGoalMl}).Validate(); err != nil {
		return err
	}

	affected, err := s.store.UpdateUserGoal(ctx, username, newGoalMl)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	if affected == 0 {
		slog.WarnContext(ctx, "Goal update matched no user",
			"component", "user",
			"username", username)
	}
	return nil
}
