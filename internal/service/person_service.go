package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// PersonService manages the contacts in the ledger.
type PersonService struct {
	store storage.Store
}

// NewPersonService creates a new PersonService with the given storage backend.
func NewPersonService(store storage.Store) *PersonService {
	return &PersonService{store: store}
}

// AddPerson creates a new contact with an opening balance.
// The opening amount is signed by the transaction type: taken starts
// the person in debt, received starts with the ledger owner owing them.
//
// The opening amount deliberately creates no transaction record; the
// history starts empty and the opening acts as a baseline. This mirrors
// the original product behavior.
func (s *PersonService) AddPerson(ctx context.Context, name string, opening decimal.Decimal, txType models.TransactionType, mobileNumber, description string) (*models.Person, error) {
	slog.Info("AddPerson request received", "name", name, "type", txType)

	for field, value := range map[string]string{
		"name":         name,
		"mobileNumber": mobileNumber,
		"description":  description,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s: %w", field, ErrEmptyField)
		}
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("%q: %w", txType, ErrInvalidType)
	}
	if opening.IsNegative() {
		return nil, ErrNegativeOpening
	}

	person := &models.Person{
		Name:         name,
		MobileNumber: mobileNumber,
		Description:  description,
		Balance:      txType.Apply(decimal.Zero, opening),
	}

	if err := s.store.CreatePerson(ctx, person); err != nil {
		slog.Error("AddPerson failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Person created", "person_id", person.ID, "balance", person.Balance)
	return person, nil
}

// ListPeople returns all contacts sorted by balance descending, so the
// biggest debtors come first on every surface.
func (s *PersonService) ListPeople(ctx context.Context) ([]*models.Person, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		slog.Error("ListPeople failed", "error", err)
		return nil, err
	}

	sort.SliceStable(people, func(i, j int) bool {
		return people[i].Balance.GreaterThan(people[j].Balance)
	})

	return people, nil
}

// GetPerson retrieves a contact by ID.
// Returns storage.ErrNotFound for an unknown ID; never a fatal error.
func (s *PersonService) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	return s.store.GetPerson(ctx, personID)
}

// DeletePerson removes a contact and cascades to all their
// transactions atomically.
func (s *PersonService) DeletePerson(ctx context.Context, personID string) error {
	slog.Info("DeletePerson request received", "person_id", personID)

	if err := s.store.DeletePerson(ctx, personID); err != nil {
		slog.Error("DeletePerson failed", "person_id", personID, "error", err)
		return err
	}

	slog.Info("Person deleted", "person_id", personID)
	return nil
}
