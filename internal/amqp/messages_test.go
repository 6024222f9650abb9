package amqp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeLoggedMessageRoundTrip(t *testing.T) {
	msg := NewIntakeLoggedMessage("alice", 500, "2024-06-15", 1250)

	body, err := msg.ToJSON()
	require.NoError(t, err)

	decoded, err := IntakeLoggedMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, "alice", decoded.Username)
	assert.Equal(t, int64(500), decoded.AmountMl)
	assert.Equal(t, "2024-06-15", decoded.Date)
	assert.Equal(t, int64(1250), decoded.TodayTotalMl)
	assert.False(t, decoded.Timestamp.IsZero())
}

func TestIntakeLoggedMessageFromJSONInvalid(t *testing.T) {
	_, err := IntakeLoggedMessageFromJSON([]byte("not json"))
	assert.Error(t, err)
}
