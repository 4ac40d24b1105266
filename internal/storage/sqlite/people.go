package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// CreatePerson inserts a new person into the database.
// ID and CreatedAt are generated if unset so restores can pass them
// through verbatim.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.CreatedAt.IsZero() {
		person.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO people (id, name, mobile_number, description, balance, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		person.ID, person.Name, person.MobileNumber, person.Description,
		person.Balance.String(), formatTime(person.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	return nil
}

// GetPerson retrieves a person by ID.
func (s *SQLiteStore) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, mobile_number, description, balance, created_at
		 FROM people WHERE id = ?`,
		personID,
	)

	person, err := scanPerson(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person %s: %w", personID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// ListPeople retrieves all people. Rows come back in creation order;
// display ordering (balance descending) is the service layer's job.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, mobile_number, description, balance, created_at
		 FROM people ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}

// UpdateBalance overwrites a person's balance.
func (s *SQLiteStore) UpdateBalance(ctx context.Context, personID string, balance decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE people SET balance = ? WHERE id = ?",
		balance.String(), personID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %s: %w", personID, storage.ErrNotFound)
	}

	return nil
}

// DeletePerson removes a person and all their transactions.
// Both deletes run in one transaction so a crash cannot leave orphaned
// transactions behind.
func (s *SQLiteStore) DeletePerson(ctx context.Context, personID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM people WHERE id = ?", personID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %s: %w", personID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE person_id = ?", personID); err != nil {
		return fmt.Errorf("failed to delete person's transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// scanPerson builds a person from a row scan function, parsing the
// TEXT-encoded balance and timestamp columns.
func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	person := &models.Person{}
	var balance, createdAt string

	if err := scan(&person.ID, &person.Name, &person.MobileNumber, &person.Description, &balance, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if person.Balance, err = parseStoredAmount(balance); err != nil {
		return nil, err
	}
	if person.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}

	return person, nil
}
