package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/message"
	"github.com/mmynk/khata/internal/service"
)

type txnsCmd struct {
	person string
}

func (*txnsCmd) Name() string     { return "txns" }
func (*txnsCmd) Synopsis() string { return "list a contact's transactions, newest first" }
func (*txnsCmd) Usage() string {
	return `khata txns -person <id>

  Lists all transactions for a contact with their running balances.
`
}

func (p *txnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.person, "person", "", "Contact id.")
}

func (p *txnsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	person, err := service.NewPersonService(store).GetPerson(ctx, p.person)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions, err := service.NewLedgerService(store).ListTransactions(ctx, person.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s (balance %s)\n\n", person.Name, message.FormatINR(person.Balance.Abs()))
	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return subcommands.ExitSuccess
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tTYPE\tAMOUNT\tBALANCE")
	for _, entry := range transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			entry.DateTime.Local().Format("02/01/2006 03:04 pm"),
			entry.Type.Label(),
			message.FormatINR(entry.Amount),
			message.FormatINR(entry.RunningBalance),
		)
	}
	tw.Flush()

	return subcommands.ExitSuccess
}
