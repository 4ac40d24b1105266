package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/service"
)

type remindCmd struct {
	person  string
	history bool
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "render a reminder message and WhatsApp link" }
func (*remindCmd) Usage() string {
	return `khata remind -person <id> [-history]

  Prints the reminder text for the contact's pending balance and the
  wa.me link that opens the chat with it prefilled. With -history the
  message carries the last transactions instead.
`
}

func (p *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.person, "person", "", "Contact id.")
	f.BoolVar(&p.history, "history", false, "Send recent transactions instead of a balance reminder.")
}

func (p *remindCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	builder, err := newBuilder()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	person, err := service.NewPersonService(store).GetPerson(ctx, p.person)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var text string
	if p.history {
		transactions, err := service.NewLedgerService(store).ListTransactions(ctx, person.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		text, err = builder.History(person, transactions)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		shopName, err := service.NewSettingsService(store).ShopName(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		text = builder.Reminder(person, shopName)
	}

	fmt.Println(text)
	fmt.Println()
	fmt.Println(builder.WhatsAppURL(person.MobileNumber, text))
	return subcommands.ExitSuccess
}
