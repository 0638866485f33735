package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moree/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/moree/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/moree/internal/adapters/pacman"    //nolint:depguard // Wired in app layer
	"go.trai.ch/moree/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/moree/internal/adapters/statefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/moree/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pacman.NodeID,
			statefile.StoreNodeID,
			statefile.ResolverNodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ManagerFactory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	paths, err := graft.Dep[ports.StatePathResolver](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, store, paths, prompter, log), nil
}
