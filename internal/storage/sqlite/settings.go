package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// GetShopSettings retrieves the singleton settings record.
// If multiple rows somehow exist, the oldest one wins.
func (s *SQLiteStore) GetShopSettings(ctx context.Context) (*models.ShopSettings, error) {
	settings := &models.ShopSettings{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, shop_name FROM shop_settings ORDER BY rowid LIMIT 1",
	).Scan(&settings.ID, &settings.ShopName)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shop settings: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop settings: %w", err)
	}

	return settings, nil
}

// SetShopName upserts the singleton settings record.
func (s *SQLiteStore) SetShopName(ctx context.Context, shopName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM shop_settings ORDER BY rowid LIMIT 1",
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO shop_settings (id, shop_name) VALUES (?, ?)",
			uuid.New().String(), shopName,
		); err != nil {
			return fmt.Errorf("failed to insert shop settings: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to read shop settings: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			"UPDATE shop_settings SET shop_name = ? WHERE id = ?",
			shopName, id,
		); err != nil {
			return fmt.Errorf("failed to update shop settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
