package reconcile

import (
	"slices"

	"go.trai.ch/moree/internal/core/domain"
)

// Policy selects which kinds of mutations a plan may contain.
// Marking packages as dependencies is always allowed.
type Policy uint8

const (
	// PolicyInstallOnly allows installing missing explicit packages.
	PolicyInstallOnly Policy = 1 << iota
	// PolicyUninstallOnly allows removing packages that have no record.
	PolicyUninstallOnly

	// PolicyFullSync allows both installs and removals.
	PolicyFullSync = PolicyInstallOnly | PolicyUninstallOnly
)

// PolicyFor maps command flags to a policy. Selecting both install and
// uninstall is the same as selecting sync.
func PolicyFor(install, uninstall, sync bool) Policy {
	if sync {
		return PolicyFullSync
	}
	var p Policy
	if install {
		p |= PolicyInstallOnly
	}
	if uninstall {
		p |= PolicyUninstallOnly
	}
	return p
}

// AllowsInstall reports whether installs are permitted.
func (p Policy) AllowsInstall() bool { return p&PolicyInstallOnly != 0 }

// AllowsUninstall reports whether removals are permitted.
func (p Policy) AllowsUninstall() bool { return p&PolicyUninstallOnly != 0 }

func (p Policy) String() string {
	switch p {
	case PolicyFullSync:
		return "sync"
	case PolicyInstallOnly:
		return "install"
	case PolicyUninstallOnly:
		return "uninstall"
	default:
		return "mark-only"
	}
}

// ActionPlan holds the sorted package batches to submit to the package manager.
type ActionPlan struct {
	// ToInstallExplicit holds explicit packages that are not installed.
	ToInstallExplicit []string
	// ToMarkAsDependency holds dependency packages currently installed explicitly.
	ToMarkAsDependency []string
	// ToRemove holds installed packages without a record, whatever their
	// install reason. Recorded dependencies are never removed.
	ToRemove []string
}

// IsEmpty reports whether the plan contains no actions.
func (p ActionPlan) IsEmpty() bool {
	return len(p.ToInstallExplicit) == 0 && len(p.ToMarkAsDependency) == 0 && len(p.ToRemove) == 0
}

// Plan computes the actions that converge observed onto desired under the policy.
func Plan(desired domain.DesiredState, observed domain.ObservedState, policy Policy) ActionPlan {
	var plan ActionPlan

	for name, rec := range desired {
		switch {
		case rec.Explicit && policy.AllowsInstall() && !observed.Installed(name):
			plan.ToInstallExplicit = append(plan.ToInstallExplicit, name)
		case !rec.Explicit && observed.Explicit.Has(name):
			plan.ToMarkAsDependency = append(plan.ToMarkAsDependency, name)
		}
	}

	if policy.AllowsUninstall() {
		for name := range observed.InstalledSet() {
			if !desired.Managed(name) {
				plan.ToRemove = append(plan.ToRemove, name)
			}
		}
	}

	slices.Sort(plan.ToInstallExplicit)
	slices.Sort(plan.ToMarkAsDependency)
	slices.Sort(plan.ToRemove)
	return plan
}
