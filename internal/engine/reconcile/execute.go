package reconcile

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type batch struct {
	name     string
	packages []string
	run      func(context.Context, []string) error
	failure  error
}

// Execute submits the plan's batches in order: installs, then dependency
// marks, then removals. Empty batches are skipped. The first failing batch
// stops execution and the remaining batches are not attempted.
func Execute(ctx context.Context, plan ActionPlan, pm ports.PackageManager) error {
	batches := []batch{
		{"install", plan.ToInstallExplicit, pm.Install, domain.ErrInstallFailed},
		{"mark-as-dependency", plan.ToMarkAsDependency, pm.InstallAsDependency, domain.ErrMarkAsDependencyFailed},
		{"remove", plan.ToRemove, pm.Remove, domain.ErrRemoveFailed},
	}

	for _, b := range batches {
		if len(b.packages) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(domain.ErrReconcileAborted, err)
		}
		if err := b.run(ctx, b.packages); err != nil {
			err = errors.Join(domain.ErrReconcileAborted, b.failure, err)
			return zerr.With(zerr.With(err, "batch", b.name), "packages", strings.Join(b.packages, " "))
		}
	}
	return nil
}

// Observe queries the package manager for a fresh snapshot. Both listings
// are read-only and run concurrently; the first failure cancels the other.
func Observe(ctx context.Context, pm ports.PackageManager) (domain.ObservedState, error) {
	var explicit, deps domain.PackageSet

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		explicit, err = pm.ListExplicit(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		deps, err = pm.ListDependencyOnly(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ObservedState{}, err
	}
	return domain.NewObservedState(explicit, deps), nil
}
