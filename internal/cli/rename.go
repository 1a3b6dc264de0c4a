package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type renameCmd struct {
	app *App
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename an expense line in the current period" }
func (*renameCmd) Usage() string {
	return `ebenezer rename <old> <new>

  Relabels an expense line. Fails when the old label does not exist in
  the current period.
`
}
func (*renameCmd) SetFlags(*flag.FlagSet) {}

func (c *renameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(c.Usage())
	}
	oldLabel, newLabel := f.Arg(0), f.Arg(1)
	if err := c.app.Ledger.Rename(ctx, oldLabel, newLabel); err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.app.Out, "Renamed expense %s to %s.\n", oldLabel, newLabel)
	return subcommands.ExitSuccess
}
