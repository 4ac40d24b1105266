package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// BackupService exports and restores full-store snapshots.
type BackupService struct {
	store storage.Store
}

// NewBackupService creates a new BackupService with the given storage backend.
func NewBackupService(store storage.Store) *BackupService {
	return &BackupService{store: store}
}

// Export produces a versioned snapshot of all people and transactions,
// both as a document and as indented JSON ready to write to a file.
func (s *BackupService) Export(ctx context.Context) (*models.Backup, []byte, error) {
	slog.Info("Export request received")

	backup, err := s.store.ExportBackup(ctx)
	if err != nil {
		slog.Error("Export failed", "error", err)
		return nil, nil, err
	}

	backup.Version = models.BackupVersion
	backup.Timestamp = time.Now().UTC()

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		slog.Error("Export serialization failed", "error", err)
		return nil, nil, fmt.Errorf("failed to serialize backup: %w", err)
	}

	slog.Info("Export successful",
		"people", len(backup.People),
		"transactions", len(backup.Transactions),
	)
	return backup, data, nil
}

// Import restores a snapshot, destructively replacing the people and
// transactions collections. The document is parsed and validated in
// full before anything is touched; a document that fails validation
// leaves the store exactly as it was. This is a replace, not a merge:
// live data absent from the snapshot is gone afterwards.
func (s *BackupService) Import(ctx context.Context, data []byte) error {
	slog.Info("Import request received", "bytes", len(data))

	var backup models.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		slog.Error("Import rejected, malformed document", "error", err)
		return fmt.Errorf("%w: %v", models.ErrInvalidBackup, err)
	}
	if err := backup.Validate(); err != nil {
		slog.Error("Import rejected, missing fields", "error", err)
		return err
	}

	if err := s.store.ImportBackup(ctx, &backup); err != nil {
		slog.Error("Import failed", "error", err)
		return err
	}

	slog.Info("Import successful",
		"version", backup.Version,
		"people", len(backup.People),
		"transactions", len(backup.Transactions),
	)
	return nil
}
