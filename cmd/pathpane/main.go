package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/pathpane/internal/cli"
	"github.com/matzehuels/pathpane/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitCode(err))
	}
}

// run executes the root command. --verbose is applied by the root
// command's pre-run hook.
func run(ctx context.Context) error {
	return cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
}
