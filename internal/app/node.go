package app

import (
	"context"

	"github.com/gaecom/arco-cli/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/entry"   //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/esbuild" //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/linear"  //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/gaecom/arco-cli/internal/engine/scheduler"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the resolved application graph handed to the CLI.
type Components struct {
	App      *App
	Logger   ports.Logger
	Renderer ports.Renderer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			watcher.NodeID,
			logger.NodeID,
			fs.ResolverNodeID,
			fs.CopierNodeID,
			fs.WriterNodeID,
			esbuild.CompilerNodeID,
			esbuild.MinifierNodeID,
			entry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Renderer: renderer}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.GlobResolver](ctx)
	if err != nil {
		return nil, err
	}

	copier, err := graft.Dep[ports.FileCopier](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	minifier, err := graft.Dep[ports.Minifier](ctx)
	if err != nil {
		return nil, err
	}

	entries, err := graft.Dep[ports.StyleEntryHandler](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sched, w, log, pipeline.Deps{
		Resolver: resolver,
		Copier:   copier,
		Writer:   writer,
		Compiler: compiler,
		Minifier: minifier,
		Entries:  entries,
		Logger:   log,
	}), nil
}
