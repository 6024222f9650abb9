package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"bad-date", false},
		{"2024-1-1", false},
		{"01-01-2024", false},
		{"", false},
	}
	for _, tc := range cases {
		key, err := ParseDateKey(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, DateKey(tc.in), key)
		} else {
			assert.ErrorIs(t, err, ErrInvalidDate, tc.in)
		}
	}
}

func TestDateKeyTime(t *testing.T) {
	k := DateKey("2024-03-15")
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), k.Time())

	assert.True(t, DateKey("not-a-date").Time().IsZero())
}

func TestUserValidate(t *testing.T) {
	assert.NoError(t, User{Username: "alice", DailyGoalMl: 3000}.Validate())
	assert.ErrorIs(t, User{Username: "alice", DailyGoalMl: 0}.Validate(), ErrInvalidGoal)
	assert.ErrorIs(t, User{Username: "alice", DailyGoalMl: -10}.Validate(), ErrInvalidGoal)
}
