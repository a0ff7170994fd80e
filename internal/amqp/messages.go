package amqp

import (
	"encoding/json"
	"time"

	"github.com/mmynk/tripmate/internal/storage"
)

// ChangeMessage tells consumers that a collection of the trip changed.
// It carries no record data; consumers reload what they need.
type ChangeMessage struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewChangeMessage creates a message for a committed storage change.
func NewChangeMessage(change storage.Change) *ChangeMessage {
	return &ChangeMessage{
		Collection: string(change.Collection),
		Op:         string(change.Op),
		ID:         change.ID,
		Timestamp:  time.Now(),
	}
}

// AffectsBalances reports whether the change can move balances.
func (m *ChangeMessage) AffectsBalances() bool {
	return m.Collection == string(storage.CollectionExpenses) ||
		m.Collection == string(storage.CollectionRepayments)
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
