// Package service implements the business operations of khata on top of
// a storage.Store: person management, ledger recording, backup and
// shop settings. All input validation happens here, before any write.
package service

import "errors"

// Validation errors. The API layer maps these to 400 responses; the CLI
// prints them as usage failures.
var (
	// ErrInvalidAmount indicates a transaction or opening amount that
	// is not a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrNegativeOpening indicates a negative opening amount. Zero is
	// allowed (a contact can start settled).
	ErrNegativeOpening = errors.New("opening amount must not be negative")

	// ErrEmptyField indicates a required text field that is empty.
	ErrEmptyField = errors.New("required field is empty")

	// ErrInvalidType indicates a transaction type other than
	// taken/received.
	ErrInvalidType = errors.New("transaction type must be taken or received")
)
