package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/service"
)

type shopNameCmd struct {
	set string
}

func (*shopNameCmd) Name() string     { return "shopname" }
func (*shopNameCmd) Synopsis() string { return "show or change the shop name used in reminders" }
func (*shopNameCmd) Usage() string {
	return `khata shopname [-set <name>]

  Without -set, prints the current shop name.
`
}

func (p *shopNameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New shop name.")
}

func (p *shopNameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	settings := service.NewSettingsService(store)

	if p.set != "" {
		if err := settings.SetShopName(ctx, p.set); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	shopName, err := settings.ShopName(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(shopName)
	return subcommands.ExitSuccess
}
