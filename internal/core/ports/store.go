package ports

import (
	"context"

	"go.trai.ch/moree/internal/core/domain"
)

// StateStore persists the desired state.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Load reads the desired state at path.
	// A missing file yields an empty state. A file that cannot be parsed is an error.
	Load(path string) (domain.DesiredState, error)

	// Save writes the desired state to path, replacing the previous contents atomically.
	Save(path string, state domain.DesiredState) error
}

// StatePathResolver decides where the state file lives.
type StatePathResolver interface {
	// Resolve returns the state file path. An empty override selects the default location.
	Resolve(ctx context.Context, override string) (string, error)
}
