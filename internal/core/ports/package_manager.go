// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/moree/internal/core/domain"
)

// PackageManager defines the interface to the system package manager.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// ListExplicit returns the packages installed explicitly.
	ListExplicit(ctx context.Context) (domain.PackageSet, error)

	// ListDependencyOnly returns the packages installed only as dependencies.
	ListDependencyOnly(ctx context.Context) (domain.PackageSet, error)

	// Install installs the packages with the explicit install reason.
	Install(ctx context.Context, names []string) error

	// InstallAsDependency installs the packages with the dependency install reason.
	InstallAsDependency(ctx context.Context, names []string) error

	// Remove uninstalls the packages.
	Remove(ctx context.Context, names []string) error

	// Describe returns human-readable details about an installed package.
	Describe(ctx context.Context, name string) (string, error)
}

// ManagerFactory builds a PackageManager for the given tool configuration.
type ManagerFactory func(cfg domain.ToolConfig) PackageManager
