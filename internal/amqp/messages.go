package amqp

import (
	"encoding/json"
	"time"

	"acqua/internal/core"
)

// IntakeLoggedMessage notifies downstream consumers that one intake event
// was recorded. It carries the fresh daily total so consumers do not have
// to re-read the store.
type IntakeLoggedMessage struct {
	Username     string    `json:"username"`
	AmountMl     int64     `json:"amount_ml"`
	Date         string    `json:"date"`
	TodayTotalMl int64     `json:"today_total_ml"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewIntakeLoggedMessage(username string, amountMl int64, date core.DateKey, todayTotalMl int64) *IntakeLoggedMessage {
	return &IntakeLoggedMessage{
		Username:     username,
		AmountMl:     amountMl,
		Date:         string(date),
		TodayTotalMl: todayTotalMl,
		Timestamp:    time.Now(),
	}
}

func (m *IntakeLoggedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func IntakeLoggedMessageFromJSON(data []byte) (*IntakeLoggedMessage, error) {
	var msg IntakeLoggedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
