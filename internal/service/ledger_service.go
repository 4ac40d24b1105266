package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// LedgerService records taken/received entries against a person's
// balance. Every recording is one atomic storage operation: the person
// update and the transaction insert succeed or fail together.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// RecordTaken records money lent to the person: their balance goes up
// by amount. Returns the updated person and the new transaction.
func (s *LedgerService) RecordTaken(ctx context.Context, personID string, amount decimal.Decimal) (*models.Person, *models.Transaction, error) {
	return s.record(ctx, personID, amount, models.TypeTaken)
}

// RecordReceived records money paid back by the person: their balance
// goes down by amount. Returns the updated person and the new
// transaction.
func (s *LedgerService) RecordReceived(ctx context.Context, personID string, amount decimal.Decimal) (*models.Person, *models.Transaction, error) {
	return s.record(ctx, personID, amount, models.TypeReceived)
}

func (s *LedgerService) record(ctx context.Context, personID string, amount decimal.Decimal, txType models.TransactionType) (*models.Person, *models.Transaction, error) {
	slog.Info("Record request received", "person_id", personID, "type", txType, "amount", amount)

	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	person, entry, err := s.store.RecordTransaction(ctx, personID, amount, txType)
	if err != nil {
		slog.Error("Record failed", "person_id", personID, "type", txType, "error", err)
		return nil, nil, err
	}

	slog.Info("Transaction recorded",
		"person_id", personID,
		"transaction_id", entry.ID,
		"type", txType,
		"running_balance", entry.RunningBalance,
	)
	return person, entry, nil
}

// ListTransactions returns a person's transactions newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, personID string) ([]*models.Transaction, error) {
	transactions, err := s.store.ListTransactionsByPerson(ctx, personID)
	if err != nil {
		slog.Error("ListTransactions failed", "person_id", personID, "error", err)
		return nil, err
	}
	return transactions, nil
}
