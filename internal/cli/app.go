package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"ebenezer/internal/config"
	"ebenezer/internal/core"
	"ebenezer/internal/ledger"
	"ebenezer/internal/report"
)

// App bundles what every verb needs: the resolved configuration, the
// ledger service and the writer report output goes to. It is built once
// in main and passed into each command; there is no ambient global.
type App struct {
	Config *config.Config
	Ledger *ledger.Service
	Out    io.Writer
}

func NewApp(cfg *config.Config, svc *ledger.Service, out io.Writer) *App {
	return &App{Config: cfg, Ledger: svc, Out: out}
}

// Register wires every verb into the commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&databaseCmd{app: app}, "")
	c.Register(&listCmd{app: app}, "")
	c.Register(&logsCmd{app: app}, "")
	c.Register(&logsCmd{app: app, all: true}, "")
	c.Register(&rollCmd{app: app}, "")
	c.Register(&periodCmd{app: app}, "")
	c.Register(&removeCmd{app: app}, "")
	c.Register(&spendCmd{app: app}, "")
	c.Register(&expenseCmd{app: app, fixed: true}, "")
	c.Register(&expenseCmd{app: app}, "")
	c.Register(&incomeCmd{app: app}, "")
	c.Register(&renameCmd{app: app}, "")
}

// ShowBalance prints the current period's balance view. It backs the
// bare invocation with no verb.
func (a *App) ShowBalance(ctx context.Context) subcommands.ExitStatus {
	incomes, expenses, err := a.currentLines(ctx)
	if err != nil {
		return fail(err)
	}
	report.WriteBalance(a.Out, incomes, expenses, a.Config.Currency)
	return subcommands.ExitSuccess
}

// currentLines fetches the current period's incomes and expenses fresh
// from the store.
func (a *App) currentLines(ctx context.Context) ([]core.Income, []core.Expense, error) {
	period, err := a.Ledger.CurrentPeriodID(ctx)
	if err != nil {
		return nil, nil, err
	}
	incomes, err := a.Ledger.Incomes(ctx, period)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := a.Ledger.Expenses(ctx, period)
	if err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints a verb's usage text for bad positional arguments.
func usageError(usage string) subcommands.ExitStatus {
	fmt.Fprint(os.Stderr, usage)
	return subcommands.ExitUsageError
}
