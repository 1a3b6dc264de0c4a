package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"ebenezer/internal/core"
)

type incomeCmd struct {
	app *App
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "add an income line to the current period" }
func (*incomeCmd) Usage() string {
	return `ebenezer income <label> <amount>

  Records an income line under the current period.
`
}
func (*incomeCmd) SetFlags(*flag.FlagSet) {}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(c.Usage())
	}
	label := f.Arg(0)
	cents, err := core.ParseCents(f.Arg(1))
	if err != nil {
		return fail(fmt.Errorf("%w: %q", err, f.Arg(1)))
	}
	if err := c.app.Ledger.AddIncome(ctx, label, cents); err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.app.Out, "Saved : New income line %s !\n", label)
	return subcommands.ExitSuccess
}
