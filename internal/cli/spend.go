package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"ebenezer/internal/core"
)

type spendCmd struct {
	app *App
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record spending on an expense line" }
func (*spendCmd) Usage() string {
	return `ebenezer spend <label> [amount]

  With an amount, adds it to the label's spending; an unknown label
  becomes a new unplanned line. Without an amount, marks the whole
  estimate as spent — in that form the label must already exist.
`
}
func (*spendCmd) SetFlags(*flag.FlagSet) {}

func (c *spendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch f.NArg() {
	case 1:
		label := f.Arg(0)
		if err := c.app.Ledger.SpendAll(ctx, label); err != nil {
			return fail(err)
		}
		fmt.Fprintf(c.app.Out, "Saved : Spent all of %s.\n", label)
	case 2:
		label := f.Arg(0)
		cents, err := core.ParseCents(f.Arg(1))
		if err != nil {
			return fail(fmt.Errorf("%w: %q", err, f.Arg(1)))
		}
		if err := c.app.Ledger.Spend(ctx, label, cents); err != nil {
			return fail(err)
		}
		fmt.Fprintf(c.app.Out, "Saved : Spent %s on %s.\n", core.FormatCents(cents, c.app.Config.Currency), label)
	default:
		return usageError(c.Usage())
	}
	return subcommands.ExitSuccess
}
