package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"acqua/internal/core"

	sqlite3 "modernc.org/sqlite"
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

// Repository is the durable store for users and intake events. It is an
// explicit dependency handed to each service constructor, never a
// package-level handle.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewRepositoryWithDB wraps an existing connection. Used by tests; no
// migrations are run.
func NewRepositoryWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateUser inserts a new user. A username collision maps to
// core.ErrDuplicateUser.
func (r *Repository) CreateUser(ctx context.Context, username string, dailyGoalMl int64) (core.User, error) {
	res, err := r.db.ExecContext(ctx, createUserSQL, username, dailyGoalMl)
	if err != nil {
		if isUniqueViolation(err) {
			return core.User{}, core.ErrDuplicateUser
		}
		return core.User{}, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.User{}, fmt.Errorf("create user id: %w", err)
	}

	slog.InfoContext(ctx, "User created",
		"component", "storage",
		"id", id,
		"username", username,
		"daily_goal_ml", dailyGoalMl)

	return core.User{ID: id, Username: username, DailyGoalMl: dailyGoalMl}, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, getUserSQL, username).Scan(&u.ID, &u.Username, &u.DailyGoalMl)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUserGoal updates the daily goal unconditionally and reports how
// many rows matched. Zero means the username does not exist; no error is
// raised for that case.
func (r *Repository) UpdateUserGoal(ctx context.Context, username string, newGoalMl int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateUserGoalSQL, newGoalMl, username)
	if err != nil {
		return 0, fmt.Errorf("update user goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update user goal rows: %w", err)
	}
	return affected, nil
}

// CreateIntake appends one intake event. The amount is stored verbatim;
// bounds are a boundary-layer concern.
func (r *Repository) CreateIntake(ctx context.Context, userID, amountMl int64, date core.DateKey) (core.IntakeEvent, error) {
	res, err := r.db.ExecContext(ctx, createIntakeSQL, userID, amountMl, string(date))
	if err != nil {
		return core.IntakeEvent{}, fmt.Errorf("create intake: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.IntakeEvent{}, fmt.Errorf("create intake id: %w", err)
	}

	slog.InfoContext(ctx, "Intake saved",
		"component", "storage",
		"id", id,
		"user_id", userID,
		"amount_ml", amountMl,
		"date", string(date))

	return core.IntakeEvent{ID: id, UserID: userID, AmountMl: amountMl, Date: date}, nil
}

// ListIntakeByUser returns the user's full intake history, newest day
// first.
func (r *Repository) ListIntakeByUser(ctx context.Context, userID int64) ([]core.IntakeEvent, error) {
	rows, err := r.db.QueryContext(ctx, listIntakeSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list intake: %w", err)
	}
	defer rows.Close()

	var events []core.IntakeEvent
	for rows.Next() {
		var ev core.IntakeEvent
		var date string
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.AmountMl, &date); err != nil {
			return nil, fmt.Errorf("scan intake row: %w", err)
		}
		ev.Date = core.DateKey(date)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intake rows: %w", err)
	}
	return events, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		return se.Code() == sqliteConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
