package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/services/api"
	"github.com/trezcool/courseadmin/services/logger"
	"github.com/trezcool/courseadmin/services/prompt"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf, err := core.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	std := logsvc.NewStdLogger("admin", os.Stderr, conf.LogLevel)
	logger := logsvc.NewRollbarLogger(std, conf)
	defer logger.Flush()

	client, err := apisvc.NewClient(conf, logger)
	if err != nil {
		logger.Error("setting up api client", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := commandLine{
		client: client,
		ui:     newPrompter(),
		out:    os.Stdout,
		logger: logger,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		switch {
		case err == errHelp:
		case isUserError(err):
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		default:
			logger.Error("admin command failed", err, map[string]interface{}{"args": os.Args[1:]})
		}
		return 1
	}
	return 0
}

// newPrompter uses line editing when stdin is a terminal.
func newPrompter() core.Prompter {
	stdin := int(os.Stdin.Fd())
	if term.IsTerminal(stdin) {
		return promptsvc.NewTerminalService(stdin, os.Stdin, os.Stdout)
	}
	return promptsvc.NewLineService(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}
