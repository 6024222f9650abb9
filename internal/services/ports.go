package services

import (
	"context"

	"acqua/internal/core"
)

// Ports for outbound adapters.
type (
	// Store is the durable persistence capability for users and intake
	// events.
	Store interface {
		CreateUser(ctx context.Context, username string, dailyGoalMl int64) (core.User, error)
		GetUserByUsername(ctx context.Context, username string) (core.User, error)
		UpdateUserGoal(ctx context.Context, username string, newGoalMl int64) (int64, error)
		CreateIntake(ctx context.Context, userID, amountMl int64, date core.DateKey) (core.IntakeEvent, error)
		ListIntakeByUser(ctx context.Context, userID int64) ([]core.IntakeEvent, error)
	}

	// Advisor produces motivational feedback for a consumed total against
	// a goal. Implementations return text for every outcome class and
	// never an error.
	Advisor interface {
		Advise(ctx context.Context, totalMl, goalMl int64) string
	}

	// EventPublisher announces recorded intake events to downstream
	// consumers.
	EventPublisher interface {
		PublishIntakeLogged(ctx context.Context, username string, amountMl int64, date core.DateKey, todayTotalMl int64) error
	}
)
