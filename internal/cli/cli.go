// Package cli implements the khata command line: person management,
// taken/received recording, backup export/import and reminder
// rendering, all against the local SQLite database.
package cli

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/message"
	"github.com/mmynk/khata/internal/storage/sqlite"
)

// Commands lists every khata subcommand in registration order.
var Commands = []subcommands.Command{
	&peopleCmd{},
	&addCmd{},
	&takenCmd{},
	&receivedCmd{},
	&txnsCmd{},
	&deleteCmd{},
	&exportCmd{},
	&importCmd{},
	&remindCmd{},
	&shopNameCmd{},
}

var dbPath = flag.String("db", defaultDBPath(), "Path to the SQLite database file")

func defaultDBPath() string {
	if path := os.Getenv("KHATA_DB_PATH"); path != "" {
		return path
	}
	return "./data/khata.db"
}

// openStore is the central function to open the ledger database.
func openStore() (*sqlite.SQLiteStore, error) {
	return sqlite.New(*dbPath)
}

// newBuilder builds the message renderer from the environment: country
// code from KHATA_COUNTRY_CODE, wording overrides from
// KHATA_TEMPLATES_PATH when set.
func newBuilder() (*message.Builder, error) {
	var templates *message.Templates
	if path := os.Getenv("KHATA_TEMPLATES_PATH"); path != "" {
		var err error
		templates, err = message.LoadTemplates(path)
		if err != nil {
			return nil, err
		}
	}
	return message.NewBuilder(os.Getenv("KHATA_COUNTRY_CODE"), templates), nil
}
