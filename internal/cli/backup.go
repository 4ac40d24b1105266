package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/service"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup snapshot of the whole ledger" }
func (*exportCmd) Usage() string {
	return `khata export [-o <file>]

  Writes a versioned JSON snapshot of all contacts and transactions to
  the given file, or to stdout when no file is given.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.out, "o", "", "Output file. Defaults to stdout.")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	backup, data, err := service.NewBackupService(store).Export(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.out == "" {
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(p.out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d people and %d transactions to %s\n",
		len(backup.People), len(backup.Transactions), p.out)
	return subcommands.ExitSuccess
}

type importCmd struct {
	in  string
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore the ledger from a backup snapshot" }
func (*importCmd) Usage() string {
	return `khata import -i <file> [-y]

  Replaces ALL contacts and transactions with the snapshot's contents.
  This is not a merge: live data missing from the snapshot is lost.
  Pass -y to skip the confirmation prompt.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.in, "i", "", "Backup file to restore from.")
	f.BoolVar(&p.yes, "y", false, "Skip the confirmation prompt.")
}

func (p *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(p.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}

	if !p.yes {
		fmt.Print("Restoring replaces ALL current data. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := service.NewBackupService(store).Import(ctx, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Data restored successfully.")
	return subcommands.ExitSuccess
}
