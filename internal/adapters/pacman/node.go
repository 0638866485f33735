package pacman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moree/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
)

// NodeID is the unique identifier for the package manager factory Graft node.
const NodeID graft.ID = "adapter.package_manager"

func init() {
	graft.Register(graft.Node[ports.ManagerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManagerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg domain.ToolConfig) ports.PackageManager {
				return NewManager(cfg, log)
			}, nil
		},
	})
}
