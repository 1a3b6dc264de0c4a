package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct {
	app *App
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an expense line from the current period" }
func (*removeCmd) Usage() string {
	return `ebenezer remove <label>

  Deletes the expense line with the given label. Fails when the label
  does not exist in the current period.
`
}
func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(c.Usage())
	}
	label := f.Arg(0)
	if err := c.app.Ledger.Remove(ctx, label); err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.app.Out, "Removed expense %s.\n", label)
	return subcommands.ExitSuccess
}
