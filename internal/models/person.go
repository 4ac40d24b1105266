package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person represents a contact in the ledger.
//
// Balance sign convention: positive means the person owes the ledger
// owner, negative means the ledger owner owes the person, zero means
// settled up.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string `json:"id"`

	// Name is the display name of the person. Never empty.
	Name string `json:"name"`

	// MobileNumber is the person's phone number as entered.
	// Non-digit characters are stripped only when building message links.
	MobileNumber string `json:"mobileNumber"`

	// Description is a free-text note (e.g. "Rent", "Groceries").
	Description string `json:"description"`

	// Balance is the person's current signed balance.
	Balance decimal.Decimal `json:"balance"`

	// CreatedAt is when the person was added. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}
