package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rollCmd struct {
	app *App
}

func (*rollCmd) Name() string     { return "roll" }
func (*rollCmd) Synopsis() string { return "close the current period and start the next one" }
func (*rollCmd) Usage() string {
	return `ebenezer roll

  Ends the current period today and opens a new one. Recurring expense
  lines (fixed and estimated) carry forward with their spending reset
  to zero; unplanned lines do not.
`
}
func (*rollCmd) SetFlags(*flag.FlagSet) {}

func (c *rollCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError(c.Usage())
	}
	if err := c.app.Ledger.Roll(ctx); err != nil {
		return fail(err)
	}
	period, err := c.app.Ledger.CurrentPeriodID(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.app.Out, "Rolled over to period %d.\n", period)
	return subcommands.ExitSuccess
}
