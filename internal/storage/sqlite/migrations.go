package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// NOTE: transactions carry no foreign key to people on purpose: restore
// bulk-inserts snapshot rows verbatim, and referential cleanup is done
// explicitly inside the cascade-delete transaction instead.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    mobile_number TEXT NOT NULL,
    description TEXT NOT NULL,
    balance TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    person_id TEXT NOT NULL,
    amount TEXT NOT NULL,
    type TEXT NOT NULL,
    date_time TEXT NOT NULL,
    running_balance TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shop_settings (
    id TEXT PRIMARY KEY,
    shop_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_person_id ON transactions(person_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date_time ON transactions(date_time);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
