package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/service"
)

type deleteCmd struct {
	person string
	yes    bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a contact and all their transactions" }
func (*deleteCmd) Usage() string {
	return `khata delete -person <id> [-y]

  Removes the contact and every transaction referencing them. This
  cannot be undone; pass -y to skip the confirmation prompt.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.person, "person", "", "Contact id.")
	f.BoolVar(&p.yes, "y", false, "Skip the confirmation prompt.")
}

func (p *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	people := service.NewPersonService(store)

	person, err := people.GetPerson(ctx, p.person)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !p.yes {
		fmt.Printf("Delete %s and all their transactions? [y/N] ", person.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := people.DeletePerson(ctx, person.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s\n", person.Name)
	return subcommands.ExitSuccess
}
