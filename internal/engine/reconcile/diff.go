// Package reconcile compares the desired package state against the installed packages
// and computes the actions needed to converge them.
package reconcile

import (
	"cmp"
	"slices"

	"go.trai.ch/moree/internal/core/domain"
)

// Kind classifies a divergence between desired and observed state.
type Kind int

const (
	// KindShouldBeExplicit marks a package wanted explicitly but installed as a dependency.
	KindShouldBeExplicit Kind = iota
	// KindShouldBeDependency marks a package wanted as a dependency but installed explicitly.
	KindShouldBeDependency
	// KindNotInstalled marks a package wanted explicitly but not installed at all.
	KindNotInstalled
	// KindUnmanaged marks a package installed explicitly without a record.
	KindUnmanaged
)

// DiffEntry is a single divergence for one package.
type DiffEntry struct {
	Package string
	Kind    Kind
}

// Diff reports packages whose install reason disagrees with the desired state.
func Diff(desired domain.DesiredState, observed domain.ObservedState) []DiffEntry {
	return diff(desired, observed, false)
}

// DiffAll is Diff plus explicit packages that are not installed and
// explicitly installed packages that are not managed.
// Dependency-only packages without a record are never reported.
func DiffAll(desired domain.DesiredState, observed domain.ObservedState) []DiffEntry {
	return diff(desired, observed, true)
}

func diff(desired domain.DesiredState, observed domain.ObservedState, all bool) []DiffEntry {
	var entries []DiffEntry

	for name, rec := range desired {
		switch {
		case rec.Explicit && observed.Dependencies.Has(name):
			entries = append(entries, DiffEntry{Package: name, Kind: KindShouldBeExplicit})
		case !rec.Explicit && observed.Explicit.Has(name):
			entries = append(entries, DiffEntry{Package: name, Kind: KindShouldBeDependency})
		case all && rec.Explicit && !observed.Installed(name):
			entries = append(entries, DiffEntry{Package: name, Kind: KindNotInstalled})
		}
	}

	if all {
		for name := range observed.Explicit {
			if !desired.Managed(name) {
				entries = append(entries, DiffEntry{Package: name, Kind: KindUnmanaged})
			}
		}
	}

	slices.SortFunc(entries, func(a, b DiffEntry) int {
		return cmp.Or(cmp.Compare(a.Package, b.Package), cmp.Compare(a.Kind, b.Kind))
	})
	return entries
}
