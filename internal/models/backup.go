package models

import (
	"errors"
	"time"
)

// BackupVersion is the current backup document version. The version
// field is checked for presence on import; migration logic can key off
// it in the future.
const BackupVersion = "1.0"

// ErrInvalidBackup indicates a backup document missing one of its
// required fields (version, people, transactions).
var ErrInvalidBackup = errors.New("invalid backup file format")

// Backup is a versioned point-in-time snapshot of all people and
// transactions. It is the only file format contract in the system and
// must remain stable so old exports keep restoring.
//
// ShopSettings is intentionally not part of the document: the "1.0"
// format never carried it, and adding a section would break round
// trips with existing backup files.
type Backup struct {
	Version      string        `json:"version"`
	Timestamp    time.Time     `json:"timestamp"`
	People       []Person      `json:"people"`
	Transactions []Transaction `json:"transactions"`
}

// Validate checks that the document carries all required fields.
// A nil slice means the field was absent from the JSON; an empty store
// exports empty (non-nil) slices, which are valid.
func (b *Backup) Validate() error {
	if b.Version == "" || b.People == nil || b.Transactions == nil {
		return ErrInvalidBackup
	}
	return nil
}
