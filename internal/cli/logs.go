package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"ebenezer/internal/core"
	"ebenezer/internal/report"
)

type logsCmd struct {
	app *App
	all bool
}

func (c *logsCmd) Name() string {
	if c.all {
		return "logs-all"
	}
	return "logs"
}

func (c *logsCmd) Synopsis() string {
	if c.all {
		return "replay the complete audit log"
	}
	return "replay the current period's audit log"
}

func (c *logsCmd) Usage() string {
	if c.all {
		return `ebenezer logs-all

  Replays every audit entry ever recorded, most recent first.
`
	}
	return `ebenezer logs

  Replays the current period's audit entries, most recent first.
`
}

func (*logsCmd) SetFlags(*flag.FlagSet) {}

func (c *logsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError(c.Usage())
	}

	var (
		logs []core.Log
		err  error
	)
	if c.all {
		logs, err = c.app.Ledger.AllLogs(ctx)
	} else {
		logs, err = c.app.Ledger.Logs(ctx)
	}
	if err != nil {
		return fail(err)
	}

	report.WriteLogs(c.app.Out, logs)
	return subcommands.ExitSuccess
}
