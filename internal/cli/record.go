package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/service"
)

// recordCmd is the shared implementation behind `khata taken` and
// `khata received`.
type recordCmd struct {
	txType models.TransactionType
	person string
	amount string
}

func (p *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.person, "person", "", "Contact id.")
	f.StringVar(&p.amount, "amount", "", "Amount (positive).")
}

func (p *recordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := service.NewLedgerService(store)

	var person *models.Person
	var entry *models.Transaction
	if p.txType == models.TypeTaken {
		person, entry, err = ledger.RecordTaken(ctx, p.person, amount)
	} else {
		person, entry, err = ledger.RecordReceived(ctx, p.person, amount)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %s for %s, balance now %s\n",
		entry.Type.Label(), entry.Amount, person.Name, person.Balance)
	return subcommands.ExitSuccess
}

type takenCmd struct{ recordCmd }

func (*takenCmd) Name() string     { return "taken" }
func (*takenCmd) Synopsis() string { return "record money lent to a contact" }
func (*takenCmd) Usage() string {
	return `khata taken -person <id> -amount <amount>

  Records money the contact took; their balance goes up.
`
}

func (p *takenCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.txType = models.TypeTaken
	return p.recordCmd.Execute(ctx, f, args...)
}

type receivedCmd struct{ recordCmd }

func (*receivedCmd) Name() string     { return "received" }
func (*receivedCmd) Synopsis() string { return "record money paid back by a contact" }
func (*receivedCmd) Usage() string {
	return `khata received -person <id> -amount <amount>

  Records money the contact paid back; their balance goes down.
`
}

func (p *receivedCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.txType = models.TypeReceived
	return p.recordCmd.Execute(ctx, f, args...)
}
