// Package models defines the core domain models for khata.
//
// # Models
//
//   - Person: a contact whose debts the ledger owner tracks
//   - Transaction: money taken by or received from a person
//   - ShopSettings: singleton shop configuration (display name)
//   - Backup: versioned full-store snapshot for export/import
//
// # Design Principles
//
// 1. **Exact money**: all monetary values are decimal.Decimal, never floats
// 2. **String IDs**: UUIDs assigned by the storage layer on creation
// 3. **Avoid circular references**: relationships use ID strings, not pointers
// 4. **Sign convention lives in one place**: TransactionType.Apply is the
// only code that turns a transaction into a balance delta
package models
