package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"ebenezer/internal/core"
)

// expenseCmd backs both the fixed and estimate verbs; they differ only
// in the type tag given to a newly created line.
type expenseCmd struct {
	app   *App
	fixed bool
}

func (c *expenseCmd) Name() string {
	if c.fixed {
		return "fixed"
	}
	return "estimate"
}

func (c *expenseCmd) Synopsis() string {
	if c.fixed {
		return "add a fixed recurring expense line or override its estimate"
	}
	return "add an estimated recurring expense line or override its estimate"
}

func (c *expenseCmd) Usage() string {
	return fmt.Sprintf(`ebenezer %s <label> <amount>

  Creates a recurring expense line with the given estimate. When the
  label already exists in the current period, only its estimate is
  overridden; the line's type never changes.
`, c.Name())
}

func (*expenseCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(c.Usage())
	}
	label := f.Arg(0)
	cents, err := core.ParseCents(f.Arg(1))
	if err != nil {
		return fail(fmt.Errorf("%w: %q", err, f.Arg(1)))
	}

	typ := core.Estimated
	if c.fixed {
		typ = core.Fixed
	}
	if err := c.app.Ledger.SetExpense(ctx, label, typ, cents); err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.app.Out, "Saved : Expense line %s.\n", label)
	return subcommands.ExitSuccess
}
