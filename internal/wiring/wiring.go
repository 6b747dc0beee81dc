// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gaecom/arco-cli/internal/adapters/config"
	_ "github.com/gaecom/arco-cli/internal/adapters/entry"
	_ "github.com/gaecom/arco-cli/internal/adapters/esbuild"
	_ "github.com/gaecom/arco-cli/internal/adapters/fs"
	_ "github.com/gaecom/arco-cli/internal/adapters/linear"
	_ "github.com/gaecom/arco-cli/internal/adapters/logger"
	_ "github.com/gaecom/arco-cli/internal/adapters/telemetry"
	_ "github.com/gaecom/arco-cli/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/gaecom/arco-cli/internal/app"
	_ "github.com/gaecom/arco-cli/internal/engine/scheduler"
)
