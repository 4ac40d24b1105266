package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/khata/internal/models"
)

// ExportBackup reads a full copy of the people and transactions
// collections inside one read transaction, so the snapshot is a
// consistent point-in-time view. Version and timestamp are filled in by
// the backup service.
func (s *SQLiteStore) ExportBackup(ctx context.Context) (*models.Backup, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	backup := &models.Backup{
		People:       []models.Person{},
		Transactions: []models.Transaction{},
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, mobile_number, description, balance, created_at
		 FROM people ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read people: %w", err)
	}
	for rows.Next() {
		person, err := scanPerson(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		backup.People = append(backup.People, *person)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	txnRows, err := tx.QueryContext(ctx,
		`SELECT id, person_id, amount, type, date_time, running_balance
		 FROM transactions ORDER BY date_time`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	for txnRows.Next() {
		entry, err := scanTransaction(txnRows.Scan)
		if err != nil {
			txnRows.Close()
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		backup.Transactions = append(backup.Transactions, *entry)
	}
	txnRows.Close()
	if err := txnRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return backup, nil
}

// ImportBackup destructively replaces the people and transactions
// collections with the snapshot's contents, preserving IDs. Clearing
// and re-inserting happen in one database transaction: a failure
// mid-restore rolls back to the pre-import state instead of leaving a
// half-cleared store. Shop settings are not part of the backup format
// and are left untouched.
func (s *SQLiteStore) ImportBackup(ctx context.Context, backup *models.Backup) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM people"); err != nil {
		return fmt.Errorf("failed to clear people: %w", err)
	}

	for i := range backup.People {
		person := &backup.People[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO people (id, name, mobile_number, description, balance, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			person.ID, person.Name, person.MobileNumber, person.Description,
			person.Balance.String(), formatTime(person.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to restore person %s: %w", person.ID, err)
		}
	}

	for i := range backup.Transactions {
		entry := &backup.Transactions[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, person_id, amount, type, date_time, running_balance)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.PersonID, entry.Amount.String(), string(entry.Type),
			formatTime(entry.DateTime), entry.RunningBalance.String(),
		); err != nil {
			return fmt.Errorf("failed to restore transaction %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
