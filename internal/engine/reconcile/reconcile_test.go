package reconcile_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/engine/reconcile"
)

var universe = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// randomWorld builds a desired and an observed state over a small universe.
// Each package independently lands in one of the observed sets (or none)
// and has an explicit, dependency or missing record.
func randomWorld(r *rand.Rand) (domain.DesiredState, domain.ObservedState) {
	desired := domain.NewDesiredState()
	observed := domain.NewObservedState(nil, nil)
	for _, name := range universe {
		switch r.IntN(3) {
		case 0:
			desired[name] = domain.NewPackageRecord(true, "")
		case 1:
			desired[name] = domain.NewPackageRecord(false, "")
		}
		switch r.IntN(3) {
		case 0:
			observed.Explicit.Add(name)
		case 1:
			observed.Dependencies.Add(name)
		}
	}
	return desired, observed
}

func worlds(t *testing.T, n int, fn func(domain.DesiredState, domain.ObservedState)) {
	t.Helper()
	r := rand.New(rand.NewPCG(7, 42))
	for range n {
		fn(randomWorld(r))
	}
}

// apply simulates the package manager carrying out a plan.
func apply(observed domain.ObservedState, plan reconcile.ActionPlan) domain.ObservedState {
	next := domain.NewObservedState(
		domain.NewPackageSet(observed.Explicit.Sorted()...),
		domain.NewPackageSet(observed.Dependencies.Sorted()...),
	)
	for _, p := range plan.ToInstallExplicit {
		next.Explicit.Add(p)
	}
	for _, p := range plan.ToMarkAsDependency {
		delete(next.Explicit, p)
		next.Dependencies.Add(p)
	}
	for _, p := range plan.ToRemove {
		delete(next.Explicit, p)
		delete(next.Dependencies, p)
	}
	return next
}

func TestDiff_Scenario_Misclassified(t *testing.T) {
	desired := domain.DesiredState{
		"A": domain.NewPackageRecord(true, "build tool"),
		"B": domain.NewPackageRecord(false, ""),
	}
	observed := domain.NewObservedState(domain.NewPackageSet("B"), domain.NewPackageSet("A"))

	want := []reconcile.DiffEntry{
		{Package: "A", Kind: reconcile.KindShouldBeExplicit},
		{Package: "B", Kind: reconcile.KindShouldBeDependency},
	}
	assert.Equal(t, want, reconcile.Diff(desired, observed))
	assert.Equal(t, want, reconcile.DiffAll(desired, observed))

	plan := reconcile.Plan(desired, observed, reconcile.PolicyFullSync)
	wantPlan := reconcile.ActionPlan{ToMarkAsDependency: []string{"B"}}
	if diff := cmp.Diff(wantPlan, plan, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_Scenario_EmptyDesired(t *testing.T) {
	desired := domain.NewDesiredState()
	observed := domain.NewObservedState(domain.NewPackageSet("X"), nil)

	assert.Empty(t, reconcile.Diff(desired, observed))
	assert.Equal(t, []reconcile.DiffEntry{{Package: "X", Kind: reconcile.KindUnmanaged}},
		reconcile.DiffAll(desired, observed))

	for _, policy := range []reconcile.Policy{0, reconcile.PolicyInstallOnly} {
		assert.True(t, reconcile.Plan(desired, observed, policy).IsEmpty(), "policy %s", policy)
	}

	// Removal policies act on the unmanaged explicit package.
	for _, policy := range []reconcile.Policy{reconcile.PolicyUninstallOnly, reconcile.PolicyFullSync} {
		plan := reconcile.Plan(desired, observed, policy)
		assert.Equal(t, []string{"X"}, plan.ToRemove, "policy %s", policy)
		assert.Empty(t, plan.ToInstallExplicit)
		assert.Empty(t, plan.ToMarkAsDependency)
	}
}

func TestDiffAll_NotInstalled(t *testing.T) {
	desired := domain.DesiredState{
		"ripgrep": domain.NewPackageRecord(true, ""),
		"libgit":  domain.NewPackageRecord(false, ""),
	}
	observed := domain.NewObservedState(nil, nil)

	assert.Empty(t, reconcile.Diff(desired, observed))
	assert.Equal(t, []reconcile.DiffEntry{{Package: "ripgrep", Kind: reconcile.KindNotInstalled}},
		reconcile.DiffAll(desired, observed))
}

func TestDiff_SortedOutput(t *testing.T) {
	desired := domain.DesiredState{
		"zeta":  domain.NewPackageRecord(false, ""),
		"alpha": domain.NewPackageRecord(true, ""),
		"mid":   domain.NewPackageRecord(true, ""),
	}
	observed := domain.NewObservedState(domain.NewPackageSet("zeta", "omega", "beta"), domain.NewPackageSet("alpha"))

	got := reconcile.DiffAll(desired, observed)
	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Package)
	}
	assert.Equal(t, []string{"alpha", "beta", "mid", "omega", "zeta"}, names)
}

func TestDiff_SuppressesUnmanagedDependencies(t *testing.T) {
	worlds(t, 500, func(desired domain.DesiredState, observed domain.ObservedState) {
		for _, e := range reconcile.DiffAll(desired, observed) {
			if observed.Dependencies.Has(e.Package) && !desired.Managed(e.Package) {
				t.Fatalf("unmanaged dependency %q reported as %v", e.Package, e.Kind)
			}
		}
	})
}

func TestPlan_Idempotent(t *testing.T) {
	worlds(t, 500, func(desired domain.DesiredState, observed domain.ObservedState) {
		first := reconcile.Plan(desired, observed, reconcile.PolicyFullSync)
		second := reconcile.Plan(desired, apply(observed, first), reconcile.PolicyFullSync)
		if !second.IsEmpty() {
			t.Fatalf("second plan not empty: %+v (first %+v)", second, first)
		}
	})
}

func TestPlan_PolicyMonotonicity(t *testing.T) {
	worlds(t, 500, func(desired domain.DesiredState, observed domain.ObservedState) {
		full := reconcile.Plan(desired, observed, reconcile.PolicyFullSync)
		for _, policy := range []reconcile.Policy{0, reconcile.PolicyInstallOnly, reconcile.PolicyUninstallOnly} {
			plan := reconcile.Plan(desired, observed, policy)
			if !policy.AllowsInstall() {
				assert.Empty(t, plan.ToInstallExplicit)
			}
			if !policy.AllowsUninstall() {
				assert.Empty(t, plan.ToRemove)
			}
			if diff := cmp.Diff(full.ToMarkAsDependency, plan.ToMarkAsDependency); diff != "" {
				t.Fatalf("ToMarkAsDependency depends on policy %s:\n%s", policy, diff)
			}
		}
	})
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name                   string
		install, uninstall, sy bool
		want                   reconcile.Policy
	}{
		{"none", false, false, false, 0},
		{"install", true, false, false, reconcile.PolicyInstallOnly},
		{"uninstall", false, true, false, reconcile.PolicyUninstallOnly},
		{"both", true, true, false, reconcile.PolicyFullSync},
		{"sync", false, false, true, reconcile.PolicyFullSync},
		{"sync with install", true, false, true, reconcile.PolicyFullSync},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.PolicyFor(tt.install, tt.uninstall, tt.sy))
		})
	}
}

func TestPlan_NormalizationLaw(t *testing.T) {
	both := reconcile.PolicyFor(true, true, false)
	sync := reconcile.PolicyFor(false, false, true)
	worlds(t, 200, func(desired domain.DesiredState, observed domain.ObservedState) {
		if diff := cmp.Diff(reconcile.Plan(desired, observed, sync), reconcile.Plan(desired, observed, both)); diff != "" {
			t.Fatalf("plans differ (-sync +both):\n%s", diff)
		}
	})
}

func TestPlan_Batches(t *testing.T) {
	desired := domain.DesiredState{
		"neovim":  domain.NewPackageRecord(true, ""),
		"git":     domain.NewPackageRecord(true, ""),
		"libxml2": domain.NewPackageRecord(false, ""),
		"python":  domain.NewPackageRecord(false, ""),
		"gcc":     domain.NewPackageRecord(false, ""),
	}
	observed := domain.NewObservedState(
		domain.NewPackageSet("git", "python", "steam", "discord"),
		domain.NewPackageSet("libxml2", "lib32-glibc"),
	)

	got := reconcile.Plan(desired, observed, reconcile.PolicyFullSync)
	want := reconcile.ActionPlan{
		ToInstallExplicit:  []string{"neovim"},
		ToMarkAsDependency: []string{"python"},
		ToRemove:           []string{"discord", "lib32-glibc", "steam"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_RemovesUnmanagedDependencies(t *testing.T) {
	desired := domain.DesiredState{
		"base":    domain.NewPackageRecord(true, ""),
		"openssl": domain.NewPackageRecord(false, ""),
	}
	observed := domain.NewObservedState(
		domain.NewPackageSet("base"),
		domain.NewPackageSet("openssl", "libunmanaged"),
	)

	got := reconcile.Plan(desired, observed, reconcile.PolicyFullSync)
	want := reconcile.ActionPlan{ToRemove: []string{"libunmanaged"}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, reconcile.Plan(desired, observed, reconcile.PolicyInstallOnly).IsEmpty())
	assert.Empty(t, reconcile.Diff(desired, observed))
}

func TestPlan_RemovalCandidates(t *testing.T) {
	worlds(t, 500, func(desired domain.DesiredState, observed domain.ObservedState) {
		plan := reconcile.Plan(desired, observed, reconcile.PolicyUninstallOnly)
		for _, name := range observed.InstalledSet().Sorted() {
			want := !desired.Managed(name)
			if got := slices.Contains(plan.ToRemove, name); got != want {
				t.Fatalf("package %q: removal = %v, want %v", name, got, want)
			}
		}
	})
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "sync", reconcile.PolicyFullSync.String())
	assert.Equal(t, "install", reconcile.PolicyInstallOnly.String())
	assert.Equal(t, "uninstall", reconcile.PolicyUninstallOnly.String())
	assert.Equal(t, "mark-only", reconcile.Policy(0).String())
}
