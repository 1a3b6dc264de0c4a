package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"ebenezer/internal/cli"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	cli.SetupLogger(cfg.LogLevel)

	ctx := context.Background()

	repo, svc := cli.InitStore(ctx, cfg)
	defer repo.Close()

	app := cli.NewApp(cfg, svc, os.Stdout)

	// Bare invocation shows the balance.
	if len(os.Args) == 1 {
		os.Exit(int(app.ShowBalance(ctx)))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, app)

	flag.Parse()
	os.Exit(int(commander.Execute(ctx)))
}
