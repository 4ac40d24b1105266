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

type peopleCmd struct{}

func (*peopleCmd) Name() string     { return "people" }
func (*peopleCmd) Synopsis() string { return "list all contacts sorted by balance" }
func (*peopleCmd) Usage() string {
	return `khata people

  Lists every contact with their current balance, biggest debtors first.
`
}

func (*peopleCmd) SetFlags(f *flag.FlagSet) {}

func (p *peopleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	people, err := service.NewPersonService(store).ListPeople(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if len(people) == 0 {
		fmt.Println("No contacts yet. Add one with: khata add")
		return subcommands.ExitSuccess
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBALANCE\tSTATUS\tDESCRIPTION")
	for _, person := range people {
		status := "settled"
		if person.Balance.IsPositive() {
			status = "pending"
		} else if person.Balance.IsNegative() {
			status = "you receive"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			person.ID, person.Name, message.FormatINR(person.Balance.Abs()), status, person.Description)
	}
	tw.Flush()

	return subcommands.ExitSuccess
}
