package statefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moree/internal/adapters/prompt" //nolint:depguard // Wired in node
	"go.trai.ch/moree/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the state store Graft node.
	StoreNodeID graft.ID = "adapter.state_store"
	// ResolverNodeID is the unique identifier for the state path resolver Graft node.
	ResolverNodeID graft.ID = "adapter.state_path_resolver"
)

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.StatePathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{prompt.NodeID},
		Run: func(ctx context.Context) (ports.StatePathResolver, error) {
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			return NewPathResolver(prompter), nil
		},
	})
}
