// Package app implements the application layer for moree.
package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/moree/internal/engine/classify"
	"go.trai.ch/moree/internal/engine/reconcile"
	"go.trai.ch/moree/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	newManager   ports.ManagerFactory
	store        ports.StateStore
	paths        ports.StatePathResolver
	prompter     ports.Prompter
	logger       ports.Logger
	printer      *report.Printer

	cfg      domain.Config
	manager  ports.PackageManager
	dataPath string
}

// New creates a new App instance using the default configuration until
// Setup is called.
func New(
	loader ports.ConfigLoader,
	newManager ports.ManagerFactory,
	store ports.StateStore,
	paths ports.StatePathResolver,
	prompter ports.Prompter,
	log ports.Logger,
) *App {
	cfg := domain.DefaultConfig()
	return &App{
		configLoader: loader,
		newManager:   newManager,
		store:        store,
		paths:        paths,
		prompter:     prompter,
		logger:       log,
		printer:      report.New(nil),
		cfg:          cfg,
		manager:      newManager(cfg.Tool),
	}
}

// WithPrinter replaces the report printer.
// This is primarily used for testing to capture stdout.
func (a *App) WithPrinter(p *report.Printer) *App {
	a.printer = p
	return a
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	DataPath   string
	JSONLogs   bool
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Setup loads the configuration and prepares the package manager.
func (a *App) Setup(_ context.Context, opts GlobalOptions) error {
	if opts.JSONLogs {
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(true)
		}
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.cfg = cfg
	a.manager = a.newManager(cfg.Tool)
	a.dataPath = opts.DataPath
	return nil
}

func (a *App) loadState(ctx context.Context) (string, domain.DesiredState, error) {
	path, err := a.paths.Resolve(ctx, a.dataPath)
	if err != nil {
		return "", nil, err
	}

	state, err := a.store.Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, state, nil
}

// Add runs an interactive classification session over the requested
// packages, or over every explicitly installed package when none are given.
func (a *App) Add(ctx context.Context, packages []string) error {
	path, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	candidates, err := classify.Candidates(ctx, a.manager, packages)
	if err != nil {
		return err
	}

	res, err := classify.NewSession(a.prompter, a.manager, a.logger).Run(ctx, desired, candidates)
	if err != nil {
		return zerr.Wrap(err, "classification failed")
	}

	if !res.Save {
		a.logger.Warn("progress discarded")
		return nil
	}
	if err := a.store.Save(path, desired); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("saved %d classified package(s) (%s)", res.Classified, res.Outcome))
	return nil
}

// ApplyOptions configures Apply.
type ApplyOptions struct {
	WithInstall   bool
	WithUninstall bool
	Sync          bool
	DryRun        bool
}

// Apply converges the installed packages towards the desired state.
func (a *App) Apply(ctx context.Context, opts ApplyOptions) error {
	_, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	observed, err := reconcile.Observe(ctx, a.manager)
	if err != nil {
		return err
	}

	policy := reconcile.PolicyFor(opts.WithInstall, opts.WithUninstall, opts.Sync)
	plan := reconcile.Plan(desired, observed, policy)

	if opts.DryRun || plan.IsEmpty() {
		a.printer.Plan(plan, policy)
		return nil
	}

	if err := reconcile.Execute(ctx, plan, a.manager); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("applied %s plan", policy))
	return nil
}

// Diff prints how the installed packages diverge from the desired state.
func (a *App) Diff(ctx context.Context, all bool) error {
	_, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	observed, err := reconcile.Observe(ctx, a.manager)
	if err != nil {
		return err
	}

	if all {
		a.printer.Diff(reconcile.DiffAll(desired, observed), a.cfg.ShowUnmanagedNote)
		return nil
	}
	a.printer.Diff(reconcile.Diff(desired, observed), false)
	return nil
}

// Edit interactively changes the record of one managed package.
func (a *App) Edit(ctx context.Context, name string) error {
	path, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	if !desired.Managed(name) {
		a.printer.NotManaged(name)
		return nil
	}

	changed, err := classify.NewEditor(a.prompter).Run(ctx, desired, name)
	if err != nil {
		return zerr.Wrap(err, "edit failed")
	}
	if !changed {
		return nil
	}
	return a.store.Save(path, desired)
}

// QueryOptions configures Query.
type QueryOptions struct {
	Information bool
	Explicit    bool
	Deps        bool
}

// Query lists managed packages, optionally filtered by install reason.
func (a *App) Query(ctx context.Context, opts QueryOptions) error {
	if opts.Explicit && opts.Deps {
		return domain.ErrConflictingFilters
	}

	_, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	var names []string
	switch {
	case opts.Explicit:
		names = desired.Explicit()
	case opts.Deps:
		names = desired.Dependencies()
	default:
		names = desired.Names()
	}

	if opts.Information {
		a.printer.Details(desired, names)
		return nil
	}
	a.printer.Names(names)
	return nil
}

// Managed prints the packages recorded as explicitly installed.
func (a *App) Managed(ctx context.Context) error {
	_, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	a.printer.Names(desired.Explicit())
	return nil
}

// Unmanaged prints explicitly installed packages that have no record.
func (a *App) Unmanaged(ctx context.Context) error {
	_, desired, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	explicit, err := a.manager.ListExplicit(ctx)
	if err != nil {
		return err
	}

	names := slices.DeleteFunc(explicit.Sorted(), desired.Managed)
	a.printer.Names(names)
	return nil
}
