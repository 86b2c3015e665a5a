// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vitelink/internal/adapters/config"
	_ "go.trai.ch/vitelink/internal/adapters/logger"
	_ "go.trai.ch/vitelink/internal/adapters/manifest"
	_ "go.trai.ch/vitelink/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/vitelink/internal/app"
)
