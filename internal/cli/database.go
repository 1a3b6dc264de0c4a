package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type databaseCmd struct {
	app *App
}

func (*databaseCmd) Name() string     { return "database" }
func (*databaseCmd) Synopsis() string { return "print the resolved path of the ledger database" }
func (*databaseCmd) Usage() string {
	return `ebenezer database

  Prints the path of the SQLite file the ledger resolves from its
  configuration. Performs no mutation.
`
}
func (*databaseCmd) SetFlags(*flag.FlagSet) {}

func (c *databaseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(c.app.Out, c.app.Config.DBPath)
	return subcommands.ExitSuccess
}
