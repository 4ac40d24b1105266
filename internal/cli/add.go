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

type addCmd struct {
	name        string
	amount      string
	txType      string
	mobile      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new contact with an opening balance" }
func (*addCmd) Usage() string {
	return `khata add -name <name> -amount <opening> -type <taken|received> -mobile <number> -desc <note>

  Adds a contact. The opening amount becomes the starting balance,
  signed by the type; it does not create a transaction entry.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Contact display name.")
	f.StringVar(&p.amount, "amount", "0", "Opening amount (non-negative).")
	f.StringVar(&p.txType, "type", "taken", "Opening direction: taken or received.")
	f.StringVar(&p.mobile, "mobile", "", "Mobile number.")
	f.StringVar(&p.description, "desc", "", "Free-text note (e.g. Rent).")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opening, err := decimal.NewFromString(p.amount)
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

	person, err := service.NewPersonService(store).AddPerson(ctx,
		p.name, opening, models.TransactionType(p.txType), p.mobile, p.description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s (id %s), balance %s\n", person.Name, person.ID, person.Balance)
	return subcommands.ExitSuccess
}
