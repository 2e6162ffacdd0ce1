package amqp

import (
	"encoding/json"
	"time"

	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseAddedMessage is published by other features of the household
// app when they create an expense, e.g. the shopping list marking an
// item as bought. The payload is a fully-formed expense, the ledger
// only adds the ID.
type ExpenseAddedMessage struct {
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
	Source    string          `json:"source"`    // Feature that raised the event
	Timestamp time.Time       `json:"timestamp"` // When the event was raised
}

// Expense converts the message payload into an expense record.
func (m *ExpenseAddedMessage) Expense() models.Expense {
	return models.Expense{
		Title:    m.Title,
		Amount:   m.Amount,
		Date:     m.Date,
		Category: m.Category,
		Note:     m.Note,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseAddedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseAddedMessageFromJSON creates a message from JSON bytes
func ExpenseAddedMessageFromJSON(data []byte) (*ExpenseAddedMessage, error) {
	var msg ExpenseAddedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
