// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
// Callers distinguish it from storage failures with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreatePerson persists a new person. The ID and CreatedAt fields
	// are populated by the store if unset.
	CreatePerson(ctx context.Context, person *models.Person) error

	// GetPerson retrieves a person by ID.
	// Returns ErrNotFound if no such person exists.
	GetPerson(ctx context.Context, personID string) (*models.Person, error)

	// ListPeople returns all people. Ordering is left to the caller.
	ListPeople(ctx context.Context) ([]*models.Person, error)

	// UpdateBalance overwrites a person's balance. Internal composition
	// only; ledger writes should go through RecordTransaction so the
	// balance and transaction history stay consistent.
	UpdateBalance(ctx context.Context, personID string, balance decimal.Decimal) error

	// DeletePerson removes a person and all their transactions in one
	// transaction, so no orphaned records can survive a partial failure.
	DeletePerson(ctx context.Context, personID string) error

	// RecordTransaction applies a taken/received entry to a person:
	// reads the current balance, applies the type's sign, updates the
	// person, and inserts the transaction with its running balance.
	// All of it happens in a single database transaction.
	// Returns the updated person and the new transaction.
	RecordTransaction(ctx context.Context, personID string, amount decimal.Decimal, txType models.TransactionType) (*models.Person, *models.Transaction, error)

	// ListTransactionsByPerson returns a person's transactions ordered
	// newest first (explicit date_time sort, not insertion order).
	ListTransactionsByPerson(ctx context.Context, personID string) ([]*models.Transaction, error)

	// DeleteTransactionsByPerson removes all transactions for a person.
	DeleteTransactionsByPerson(ctx context.Context, personID string) error

	// ExportBackup returns a full copy of the people and transactions
	// collections. Slices are non-nil even when empty.
	ExportBackup(ctx context.Context) (*models.Backup, error)

	// ImportBackup destructively replaces both collections with the
	// snapshot's contents, preserving IDs, in a single database
	// transaction. Shop settings are left untouched.
	ImportBackup(ctx context.Context, backup *models.Backup) error

	// GetShopSettings returns the singleton settings record, or
	// ErrNotFound if none has been written yet.
	GetShopSettings(ctx context.Context) (*models.ShopSettings, error)

	// SetShopName upserts the singleton settings record.
	SetShopName(ctx context.Context, shopName string) error

	// Close releases any resources held by the store.
	Close() error
}
