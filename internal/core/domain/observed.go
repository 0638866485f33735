package domain

import (
	"maps"
	"slices"
)

// PackageSet is an unordered set of package names.
type PackageSet map[string]struct{}

// NewPackageSet builds a set from the given names.
func NewPackageSet(names ...string) PackageSet {
	s := make(PackageSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s PackageSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the name is in the set.
func (s PackageSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order.
func (s PackageSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Union returns a new set holding the members of s and other.
func (s PackageSet) Union(other PackageSet) PackageSet {
	out := make(PackageSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// ObservedState is a snapshot of what the system package manager reports.
type ObservedState struct {
	// Explicit holds packages installed explicitly.
	Explicit PackageSet
	// Dependencies holds packages installed only as dependencies.
	Dependencies PackageSet
}

// NewObservedState builds a snapshot from the two package sets.
// Nil sets are replaced by empty ones.
func NewObservedState(explicit, deps PackageSet) ObservedState {
	if explicit == nil {
		explicit = PackageSet{}
	}
	if deps == nil {
		deps = PackageSet{}
	}
	return ObservedState{Explicit: explicit, Dependencies: deps}
}

// Installed reports whether the package is installed for any reason.
func (o ObservedState) Installed(name string) bool {
	return o.Explicit.Has(name) || o.Dependencies.Has(name)
}

// InstalledSet returns every installed package.
func (o ObservedState) InstalledSet() PackageSet {
	return o.Explicit.Union(o.Dependencies)
}
