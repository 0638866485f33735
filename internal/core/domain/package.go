package domain

import (
	"maps"
	"slices"
)

// PackageRecord is the user's intent for a single package.
type PackageRecord struct {
	// Explicit reports whether the package should be installed explicitly.
	// When false the package is wanted only as a dependency.
	Explicit bool `json:"explicit"`

	// Memo is a free-form note. An empty memo means none was recorded.
	Memo string `json:"memo,omitempty"`
}

// NewPackageRecord creates a record. An empty memo is stored as absent.
func NewPackageRecord(explicit bool, memo string) PackageRecord {
	return PackageRecord{Explicit: explicit, Memo: memo}
}

// HasMemo reports whether a memo was recorded.
func (r PackageRecord) HasMemo() bool {
	return r.Memo != ""
}

// DesiredState maps package names to the user's recorded intent.
// Packages absent from the map are unmanaged.
type DesiredState map[string]PackageRecord

// NewDesiredState returns an empty desired state.
func NewDesiredState() DesiredState {
	return make(DesiredState)
}

// Managed reports whether the package has a record.
func (s DesiredState) Managed(name string) bool {
	_, ok := s[name]
	return ok
}

// IsExplicit reports whether the package is managed and marked explicit.
func (s DesiredState) IsExplicit(name string) bool {
	r, ok := s[name]
	return ok && r.Explicit
}

// Names returns all managed package names in ascending order.
func (s DesiredState) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Explicit returns the managed packages marked explicit, sorted.
func (s DesiredState) Explicit() []string {
	return s.filter(true)
}

// Dependencies returns the managed packages marked as dependencies, sorted.
func (s DesiredState) Dependencies() []string {
	return s.filter(false)
}

func (s DesiredState) filter(explicit bool) []string {
	names := make([]string, 0, len(s))
	for name, r := range s {
		if r.Explicit == explicit {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Clone returns an independent copy of the state.
func (s DesiredState) Clone() DesiredState {
	out := make(DesiredState, len(s))
	maps.Copy(out, s)
	return out
}
