// Package report renders command results to stdout.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/engine/reconcile"
	"go.trai.ch/moree/internal/ui/output"
	"go.trai.ch/moree/internal/ui/style"
)

// UnmanagedDependenciesNote is printed after a full diff.
const UnmanagedDependenciesNote = "Note: " + domain.ProgramName +
	" doesn't print unmanaged packages installed as dependencies."

const (
	labelExplicit     = "[explicitly]"
	labelNonExplicit  = "[non-explicitly]"
	labelNotInstalled = "[explicitly managed, but not installed]"
	labelUnmanaged    = "[unmanaged]"
)

// Printer writes human-readable reports.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// New creates a Printer writing to w. A nil writer selects stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, out: output.New(w)}
}

// NewWithProfile creates a Printer with a fixed color profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (p *Printer) paint(s string, c lipgloss.Color) termenv.Style {
	return p.out.String(s).Foreground(p.out.Color(string(c)))
}

// Names prints one package name per line.
func (p *Printer) Names(names []string) {
	for _, name := range names {
		_, _ = fmt.Fprintln(p.w, name)
	}
}

// Diff prints each divergence as the change that would fix it: the wanted
// install reason with "+" and the current one with "-".
func (p *Printer) Diff(entries []reconcile.DiffEntry, note bool) {
	for _, e := range entries {
		switch e.Kind {
		case reconcile.KindShouldBeExplicit:
			p.added(e.Package, labelExplicit)
			p.removed(e.Package, labelNonExplicit)
		case reconcile.KindShouldBeDependency:
			p.added(e.Package, labelNonExplicit)
			p.removed(e.Package, labelExplicit)
		case reconcile.KindNotInstalled:
			p.added(e.Package, labelNotInstalled)
		case reconcile.KindUnmanaged:
			p.removed(e.Package, labelUnmanaged)
		}
	}

	if note {
		_, _ = fmt.Fprintln(p.w, p.out.String(UnmanagedDependenciesNote).Faint())
	}
}

func (p *Printer) added(name, label string) {
	_, _ = fmt.Fprintf(p.w, "%s %s %s\n", style.Plus, p.paint(name, style.Green), label)
}

func (p *Printer) removed(name, label string) {
	_, _ = fmt.Fprintf(p.w, "%s %s %s\n", style.Minus, p.paint(name, style.Red), label)
}

// Details prints a block per package with its install reason and memo.
func (p *Printer) Details(state domain.DesiredState, names []string) {
	for _, name := range names {
		rec, ok := state[name]
		if !ok {
			continue
		}

		reason := "Dependency"
		if rec.Explicit {
			reason = "Explicitly installed"
		}
		memo := "None"
		if rec.HasMemo() {
			memo = rec.Memo
		}

		_, _ = fmt.Fprintln(p.w, p.paint(fmt.Sprintf("Name            : %s", name), style.Cyan).Bold())
		_, _ = fmt.Fprintln(p.w, p.paint(fmt.Sprintf("Install Reason  : %s", reason), style.Yellow).Bold())
		_, _ = fmt.Fprintln(p.w, p.paint(fmt.Sprintf("Memo            : %s", memo), style.Green).Bold())
		_, _ = fmt.Fprintln(p.w)
	}
}

// Plan prints the batches a reconciliation would run.
func (p *Printer) Plan(plan reconcile.ActionPlan, policy reconcile.Policy) {
	if plan.IsEmpty() {
		_, _ = fmt.Fprintf(p.w, "%s Nothing to do (%s).\n", p.paint(style.Check, style.Green), policy)
		return
	}

	_, _ = fmt.Fprintf(p.w, "Plan (%s):\n", policy)
	p.batch("Install", style.Plus, style.Green, plan.ToInstallExplicit)
	p.batch("Mark as dependency", style.Pointer, style.Yellow, plan.ToMarkAsDependency)
	p.batch("Remove", style.Minus, style.Red, plan.ToRemove)
}

func (p *Printer) batch(title, icon string, c lipgloss.Color, names []string) {
	if len(names) == 0 {
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s:\n", p.out.String(title).Bold())
	for _, name := range names {
		_, _ = fmt.Fprintf(p.w, "  %s %s\n", p.paint(icon, c), name)
	}
}

// NotManaged tells the user a package has no record yet.
func (p *Printer) NotManaged(name string) {
	msg := fmt.Sprintf("Package %s is not managed. Use `add` to manage this package.", name)
	_, _ = fmt.Fprintln(p.w, p.paint(msg, style.Yellow).Bold())
}
