package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"ebenezer/internal/report"
)

type periodCmd struct {
	app *App
}

func (*periodCmd) Name() string     { return "period" }
func (*periodCmd) Synopsis() string { return "print a summary of the current period" }
func (*periodCmd) Usage() string {
	return `ebenezer period

  Prints the current period's id, start date and status.
`
}
func (*periodCmd) SetFlags(*flag.FlagSet) {}

func (c *periodCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError(c.Usage())
	}
	id, err := c.app.Ledger.CurrentPeriodID(ctx)
	if err != nil {
		return fail(err)
	}
	period, err := c.app.Ledger.Period(ctx, id)
	if err != nil {
		return fail(err)
	}
	report.WritePeriod(c.app.Out, period)
	return subcommands.ExitSuccess
}
