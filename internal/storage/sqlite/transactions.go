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

// RecordTransaction applies one taken/received entry to a person.
// The balance read, the person update and the transaction insert all
// happen inside a single database transaction: the person's balance and
// the latest transaction's running balance can never diverge, even if
// the process dies mid-write.
func (s *SQLiteStore) RecordTransaction(ctx context.Context, personID string, amount decimal.Decimal, txType models.TransactionType) (*models.Person, *models.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT id, name, mobile_number, description, balance, created_at
		 FROM people WHERE id = ?`,
		personID,
	)
	person, err := scanPerson(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("person %s: %w", personID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get person: %w", err)
	}

	newBalance := txType.Apply(person.Balance, amount)

	if _, err := tx.ExecContext(ctx,
		"UPDATE people SET balance = ? WHERE id = ?",
		newBalance.String(), personID,
	); err != nil {
		return nil, nil, fmt.Errorf("failed to update balance: %w", err)
	}

	entry := &models.Transaction{
		ID:             uuid.New().String(),
		PersonID:       personID,
		Amount:         amount,
		Type:           txType,
		DateTime:       time.Now().UTC(),
		RunningBalance: newBalance,
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (id, person_id, amount, type, date_time, running_balance)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.PersonID, entry.Amount.String(), string(entry.Type),
		formatTime(entry.DateTime), entry.RunningBalance.String(),
	); err != nil {
		return nil, nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	person.Balance = newBalance
	return person, entry, nil
}

// ListTransactionsByPerson retrieves all transactions for a person,
// newest first. The sort is an explicit date_time ORDER BY; insertion
// order is never relied on.
func (s *SQLiteStore) ListTransactionsByPerson(ctx context.Context, personID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, person_id, amount, type, date_time, running_balance
		 FROM transactions WHERE person_id = ? ORDER BY date_time DESC, rowid DESC`,
		personID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		entry, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// DeleteTransactionsByPerson removes all transactions for a person.
func (s *SQLiteStore) DeleteTransactionsByPerson(ctx context.Context, personID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE person_id = ?", personID,
	); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// scanTransaction builds a transaction from a row scan function.
func scanTransaction(scan func(dest ...any) error) (*models.Transaction, error) {
	entry := &models.Transaction{}
	var amount, txType, dateTime, runningBalance string

	if err := scan(&entry.ID, &entry.PersonID, &amount, &txType, &dateTime, &runningBalance); err != nil {
		return nil, err
	}

	entry.Type = models.TransactionType(txType)

	var err error
	if entry.Amount, err = parseStoredAmount(amount); err != nil {
		return nil, err
	}
	if entry.RunningBalance, err = parseStoredAmount(runningBalance); err != nil {
		return nil, err
	}
	if entry.DateTime, err = parseStoredTime(dateTime); err != nil {
		return nil, err
	}

	return entry, nil
}
