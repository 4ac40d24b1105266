package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

func TestAddPersonValidation(t *testing.T) {
	store := newTestStore(t)
	people := NewPersonService(store)
	ctx := context.Background()

	opening := decimal.RequireFromString("100")

	tests := []struct {
		name    string
		person  string
		mobile  string
		desc    string
		amount  decimal.Decimal
		txType  models.TransactionType
		wantErr error
	}{
		{"empty name", "", "987", "Rent", opening, models.TypeTaken, ErrEmptyField},
		{"empty mobile", "Alice", "", "Rent", opening, models.TypeTaken, ErrEmptyField},
		{"empty description", "Alice", "987", "", opening, models.TypeTaken, ErrEmptyField},
		{"whitespace name", "   ", "987", "Rent", opening, models.TypeTaken, ErrEmptyField},
		{"negative opening", "Alice", "987", "Rent", decimal.RequireFromString("-1"), models.TypeTaken, ErrNegativeOpening},
		{"bad type", "Alice", "987", "Rent", opening, models.TransactionType("loan"), ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := people.AddPerson(ctx, tt.person, tt.amount, tt.txType, tt.mobile, tt.desc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddPerson error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Nothing should have been written by the rejected calls.
	all, err := people.ListPeople(ctx)
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store after rejected adds, got %d people", len(all))
	}
}

func TestAddPersonSignsOpeningBalance(t *testing.T) {
	store := newTestStore(t)
	people := NewPersonService(store)
	ctx := context.Background()

	taken, err := people.AddPerson(ctx, "Alice", decimal.RequireFromString("500"), models.TypeTaken, "987", "Rent")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if !taken.Balance.Equal(decimal.RequireFromString("500")) {
		t.Errorf("taken opening balance = %s, want 500", taken.Balance)
	}

	received, err := people.AddPerson(ctx, "Bob", decimal.RequireFromString("250"), models.TypeReceived, "986", "Advance")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if !received.Balance.Equal(decimal.RequireFromString("-250")) {
		t.Errorf("received opening balance = %s, want -250", received.Balance)
	}

	// Zero opening is allowed.
	settled, err := people.AddPerson(ctx, "Carol", decimal.Zero, models.TypeTaken, "985", "New")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if !settled.Balance.IsZero() {
		t.Errorf("zero opening balance = %s, want 0", settled.Balance)
	}

	// The opening amount must not create a history entry.
	ledger := NewLedgerService(store)
	for _, person := range []*models.Person{taken, received} {
		transactions, err := ledger.ListTransactions(ctx, person.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("%s: expected empty history after opening, got %d entries", person.Name, len(transactions))
		}
	}
}

func TestListPeopleSortsByBalanceDescending(t *testing.T) {
	store := newTestStore(t)
	people := NewPersonService(store)
	ctx := context.Background()

	amounts := map[string]string{"Low": "10", "High": "900", "Negative": "300", "Mid": "250"}
	for name, amount := range amounts {
		txType := models.TypeTaken
		if name == "Negative" {
			txType = models.TypeReceived
		}
		if _, err := people.AddPerson(ctx, name, decimal.RequireFromString(amount), txType, "9", name); err != nil {
			t.Fatalf("AddPerson failed: %v", err)
		}
	}

	all, err := people.ListPeople(ctx)
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}

	wantOrder := []string{"High", "Mid", "Low", "Negative"}
	if len(all) != len(wantOrder) {
		t.Fatalf("expected %d people, got %d", len(wantOrder), len(all))
	}
	for i, name := range wantOrder {
		if all[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, all[i].Name, name)
		}
	}
}

// TestLedgerScenario walks the canonical flow: add Alice with opening
// 500 taken, receive 200, take 50, then delete her.
func TestLedgerScenario(t *testing.T) {
	store := newTestStore(t)
	people := NewPersonService(store)
	ledger := NewLedgerService(store)
	ctx := context.Background()

	alice, err := people.AddPerson(ctx, "Alice", decimal.RequireFromString("500"), models.TypeTaken, "9876543210", "Rent")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if !alice.Balance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("opening balance = %s, want 500", alice.Balance)
	}

	alice, entry, err := ledger.RecordReceived(ctx, alice.ID, decimal.RequireFromString("200"))
	if err != nil {
		t.Fatalf("RecordReceived failed: %v", err)
	}
	if !alice.Balance.Equal(decimal.RequireFromString("300")) {
		t.Errorf("balance after received 200 = %s, want 300", alice.Balance)
	}
	if entry.Type != models.TypeReceived || !entry.Amount.Equal(decimal.RequireFromString("200")) ||
		!entry.RunningBalance.Equal(decimal.RequireFromString("300")) {
		t.Errorf("unexpected transaction: %+v", entry)
	}

	alice, _, err = ledger.RecordTaken(ctx, alice.ID, decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("RecordTaken failed: %v", err)
	}
	if !alice.Balance.Equal(decimal.RequireFromString("350")) {
		t.Errorf("balance after taken 50 = %s, want 350", alice.Balance)
	}

	transactions, err := ledger.ListTransactions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	// Newest first; the earlier entry's running balance is unchanged.
	if !transactions[0].RunningBalance.Equal(decimal.RequireFromString("350")) {
		t.Errorf("newest running balance = %s, want 350", transactions[0].RunningBalance)
	}
	if !transactions[1].RunningBalance.Equal(decimal.RequireFromString("300")) {
		t.Errorf("older running balance = %s, want 300 (must not be recomputed)", transactions[1].RunningBalance)
	}

	if err := people.DeletePerson(ctx, alice.ID); err != nil {
		t.Fatalf("DeletePerson failed: %v", err)
	}
	if _, err := people.GetPerson(ctx, alice.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected Alice gone, got %v", err)
	}
	remaining, err := ledger.ListTransactions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected 0 transactions after delete, got %d", len(remaining))
	}
}
