// Package main is the entry point for the arco stylesheet build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gaecom/arco-cli/cmd/arco/commands"
	"github.com/gaecom/arco-cli/internal/app"
	"github.com/gaecom/arco-cli/internal/core/domain"
	_ "github.com/gaecom/arco-cli/internal/wiring"
	"github.com/grindlemire/graft"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// jsonSwitcher is implemented by loggers that can change their output format.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if r := components.Renderer; r != nil {
		if err := r.Start(ctx); err != nil {
			components.Logger.Error(err)
			return 1
		}
		defer func() { _ = r.Stop() }()
	}

	var opts []commands.Option
	if s, ok := components.Logger.(jsonSwitcher); ok {
		opts = append(opts, commands.WithJSONLogSwitch(s.SetJSON))
	}

	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Strict build failures were already reported stage by stage.
		if errors.Is(err, domain.ErrBuildFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
