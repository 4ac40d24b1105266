package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction relative to the
// ledger owner.
type TransactionType string

const (
	// TypeTaken means money was lent out: the person's debt increases.
	TypeTaken TransactionType = "taken"

	// TypeReceived means money was paid back: the person's debt decreases.
	TypeReceived TransactionType = "received"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeTaken || t == TypeReceived
}

// Apply returns the balance after a transaction of this type and amount.
// This is the single place the sign convention is encoded: taken adds to
// the balance, received subtracts from it.
func (t TransactionType) Apply(balance, amount decimal.Decimal) decimal.Decimal {
	if t == TypeReceived {
		return balance.Sub(amount)
	}
	return balance.Add(amount)
}

// Label returns the display form of the type ("Taken" / "Received").
func (t TransactionType) Label() string {
	if t == TypeReceived {
		return "Received"
	}
	return "Taken"
}

// Transaction represents one ledger entry for a person.
// Transactions are never edited; they are removed only by a person
// cascade delete or a full restore.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// PersonID references the person this transaction belongs to.
	// Deleting the person deletes all their transactions.
	PersonID string `json:"personId"`

	// Amount is the positive magnitude of the transaction.
	Amount decimal.Decimal `json:"amount"`

	// Type determines the direction applied to the balance.
	Type TransactionType `json:"type"`

	// DateTime is when the transaction was recorded. Immutable, used
	// for ordering.
	DateTime time.Time `json:"dateTime"`

	// RunningBalance is the person's balance immediately after this
	// transaction was applied. A historical snapshot, never recomputed.
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
