package services

import (
	"context"
	"testing"

	"acqua/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svc := NewUserService(newFakeStore())

	u, err := svc.Register(context.Background(), "alice", 3000)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, int64(3000), u.DailyGoalMl)
}

func TestRegisterDuplicateKeepsFirstGoal(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", 3000)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", 9999)
	assert.ErrorIs(t, err, core.ErrDuplicateUser)

	u, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), u.DailyGoalMl)
}

func TestRegisterRejectsNonPositiveGoal(t *testing.T) {
	svc := NewUserService(newFakeStore())

	_, err := svc.Register(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, core.ErrInvalidGoal)

	_, err = svc.Register(context.Background(), "alice", -1)
	assert.ErrorIs(t, err, core.ErrInvalidGoal)
}

func TestUpdateGoal(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", 3000)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateGoal(ctx, "alice", 2500))

	u, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), u.DailyGoalMl)
}

func TestUpdateGoalUnknownUserSilentlySucceeds(t *testing.T) {
	// Pre-existing asymmetry with Register: no existence check precedes
	// the update, so an unknown username is a zero-row no-op, not an
	// error.
	store := newFakeStore()
	svc := NewUserService(store)

	err := svc.UpdateGoal(context.Background(), "ghost", 2500)
	assert.NoError(t, err)
	assert.Empty(t, store.users)
}

func TestUpdateGoalRejectsNonPositiveGoal(t *testing.T) {
	svc := NewUserService(newFakeStore())
	err := svc.UpdateGoal(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, core.ErrInvalidGoal)
}
