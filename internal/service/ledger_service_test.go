package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

func TestRecordRejectsNonPositiveAmounts(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedgerService(store)
	ctx := context.Background()

	person, err := NewPersonService(store).AddPerson(ctx, "Alice", decimal.Zero, models.TypeTaken, "987", "Rent")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}

	for _, amount := range []string{"0", "-5", "-0.01"} {
		if _, _, err := ledger.RecordTaken(ctx, person.ID, decimal.RequireFromString(amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("RecordTaken(%s) error = %v, want ErrInvalidAmount", amount, err)
		}
		if _, _, err := ledger.RecordReceived(ctx, person.ID, decimal.RequireFromString(amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("RecordReceived(%s) error = %v, want ErrInvalidAmount", amount, err)
		}
	}

	// The rejected calls must not have touched the ledger.
	transactions, err := ledger.ListTransactions(ctx, person.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("expected 0 transactions, got %d", len(transactions))
	}
}

func TestRecordUnknownPerson(t *testing.T) {
	ledger := NewLedgerService(newTestStore(t))

	_, _, err := ledger.RecordTaken(context.Background(), "nonexistent-id", decimal.RequireFromString("10"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestBalanceAccumulation checks the ledger law: after any sequence of
// recordings, balance = opening + sum(taken) - sum(received).
func TestBalanceAccumulation(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedgerService(store)
	ctx := context.Background()

	person, err := NewPersonService(store).AddPerson(ctx, "Alice", decimal.RequireFromString("120.50"), models.TypeTaken, "987", "Rent")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}

	steps := []struct {
		txType models.TransactionType
		amount string
	}{
		{models.TypeTaken, "30"},
		{models.TypeReceived, "45.25"},
		{models.TypeTaken, "0.75"},
		{models.TypeReceived, "200"},
		{models.TypeTaken, "19.99"},
	}

	expected := person.Balance
	for _, step := range steps {
		amount := decimal.RequireFromString(step.amount)
		expected = step.txType.Apply(expected, amount)

		var entry *models.Transaction
		if step.txType == models.TypeTaken {
			person, entry, err = ledger.RecordTaken(ctx, person.ID, amount)
		} else {
			person, entry, err = ledger.RecordReceived(ctx, person.ID, amount)
		}
		if err != nil {
			t.Fatalf("record %s %s failed: %v", step.txType, step.amount, err)
		}

		if !person.Balance.Equal(expected) {
			t.Fatalf("balance after %s %s = %s, want %s", step.txType, step.amount, person.Balance, expected)
		}
		if !entry.RunningBalance.Equal(expected) {
			t.Fatalf("running balance after %s %s = %s, want %s", step.txType, step.amount, entry.RunningBalance, expected)
		}
	}

	// -74.01 total movement over an opening of 120.50.
	if !person.Balance.Equal(decimal.RequireFromString("-74.01")) {
		t.Errorf("final balance = %s, want -74.01", person.Balance)
	}

	transactions, err := ledger.ListTransactions(ctx, person.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != len(steps) {
		t.Errorf("expected %d transactions, got %d", len(steps), len(transactions))
	}
}
