package classify

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/moree/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// Candidates returns the packages a session walks over.
// With no request it is every explicitly installed package. Otherwise every
// requested package must be installed; if any is not, the error lists all of them.
func Candidates(ctx context.Context, pm ports.PackageManager, requested []string) ([]string, error) {
	observed, err := reconcile.Observe(ctx, pm)
	if err != nil {
		return nil, err
	}
	return SelectCandidates(observed, requested)
}

// SelectCandidates is Candidates against an existing snapshot.
func SelectCandidates(observed domain.ObservedState, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return observed.Explicit.Sorted(), nil
	}

	var missing []string
	for _, name := range requested {
		if !observed.Installed(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		missing = slices.Compact(missing)
		err := zerr.Wrap(domain.ErrPackagesNotInstalled, "cannot classify requested packages")
		return nil, zerr.With(err, "missing", strings.Join(missing, ", "))
	}

	out := slices.Clone(requested)
	seen := make(map[string]struct{}, len(out))
	return slices.DeleteFunc(out, func(name string) bool {
		if _, ok := seen[name]; ok {
			return true
		}
		seen[name] = struct{}{}
		return false
	}), nil
}
