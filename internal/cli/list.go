package cli

import (
	"context"
	"flag"
	"strconv"

	"github.com/google/subcommands"

	"ebenezer/internal/report"
)

type listCmd struct {
	app *App
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the itemized account of a period" }
func (*listCmd) Usage() string {
	return `ebenezer list [period-id]

  Prints every income line and every expense line of the given period,
  expenses grouped by type and sorted by amount spent. Defaults to the
  current period.
`
}
func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usageError(c.Usage())
	}

	var (
		period int64
		err    error
	)
	if f.NArg() == 1 {
		period, err = strconv.ParseInt(f.Arg(0), 10, 64)
		if err != nil {
			return usageError(c.Usage())
		}
		// Resolve the id so an unknown period fails loudly instead of
		// listing nothing.
		if _, err := c.app.Ledger.Period(ctx, period); err != nil {
			return fail(err)
		}
	} else {
		period, err = c.app.Ledger.CurrentPeriodID(ctx)
		if err != nil {
			return fail(err)
		}
	}

	incomes, err := c.app.Ledger.Incomes(ctx, period)
	if err != nil {
		return fail(err)
	}
	expenses, err := c.app.Ledger.Expenses(ctx, period)
	if err != nil {
		return fail(err)
	}

	report.WriteList(c.app.Out, incomes, expenses, c.app.Config.Currency)
	return subcommands.ExitSuccess
}
