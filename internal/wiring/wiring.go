// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/moree/internal/adapters/config"
	_ "go.trai.ch/moree/internal/adapters/logger"
	_ "go.trai.ch/moree/internal/adapters/pacman"
	_ "go.trai.ch/moree/internal/adapters/prompt"
	_ "go.trai.ch/moree/internal/adapters/statefile"
	// Register app nodes.
	_ "go.trai.ch/moree/internal/app"
)
