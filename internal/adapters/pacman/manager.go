// Package pacman implements ports.PackageManager on top of pacman-compatible
// command line tools such as paru, yay or pacman itself.
package pacman

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager runs the configured package manager binary.
type Manager struct {
	cfg    domain.ToolConfig
	logger ports.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ ports.PackageManager = (*Manager)(nil)

// NewManager creates a Manager. Mutating commands are attached to the process's
// standard streams so the tool can ask for confirmation.
func NewManager(cfg domain.ToolConfig, logger ports.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetIO replaces the streams used by mutating commands.
func (m *Manager) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	m.stdin, m.stdout, m.stderr = stdin, stdout, stderr
}

// ListExplicit returns the packages installed explicitly (-Qe).
func (m *Manager) ListExplicit(ctx context.Context) (domain.PackageSet, error) {
	return m.list(ctx, "-Qe")
}

// ListDependencyOnly returns the packages installed as dependencies (-Qd).
func (m *Manager) ListDependencyOnly(ctx context.Context) (domain.PackageSet, error) {
	return m.list(ctx, "-Qd")
}

// Install installs packages explicitly (-S).
func (m *Manager) Install(ctx context.Context, names []string) error {
	return m.mutate(ctx, names, "-S")
}

// InstallAsDependency installs packages with the dependency reason (-S --asdeps).
func (m *Manager) InstallAsDependency(ctx context.Context, names []string) error {
	return m.mutate(ctx, names, "-S", "--asdeps")
}

// Remove uninstalls packages (-R).
func (m *Manager) Remove(ctx context.Context, names []string) error {
	return m.mutate(ctx, names, "-R")
}

// Describe returns the output of -Qi for one package.
func (m *Manager) Describe(ctx context.Context, name string) (string, error) {
	out, err := m.query(ctx, "-Qi", name)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDescribeFailed, err), "package", name)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (m *Manager) list(ctx context.Context, flag string) (domain.PackageSet, error) {
	out, err := m.query(ctx, flag)
	if err != nil {
		// pacman exits 1 without output when a query matches nothing.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 &&
			len(bytes.TrimSpace(out)) == 0 && len(bytes.TrimSpace(exitErr.Stderr)) == 0 {
			return domain.PackageSet{}, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrPackageQueryFailed, err), "flag", flag)
	}
	return ParsePackageList(bytes.NewReader(out))
}

func (m *Manager) query(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.cfg.Command, args...) //nolint:gosec // command comes from config
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				return out, zerr.With(zerr.With(err, "stderr", stderr), "exit_code", exitErr.ExitCode())
			}
			return out, zerr.With(err, "exit_code", exitErr.ExitCode())
		}
		return out, zerr.With(err, "command", m.cfg.Command)
	}
	return out, nil
}

func (m *Manager) mutate(ctx context.Context, names []string, flags ...string) error {
	if len(names) == 0 {
		return nil
	}

	name, args := m.command(flags, names)
	m.logger.Info(name + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from config
	cmd.Stdin = m.stdin
	cmd.Stdout = m.stdout
	cmd.Stderr = m.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(err, "exit_code", exitErr.ExitCode())
		}
		return zerr.With(err, "command", name)
	}
	return nil
}

// command builds the argv for a mutating call, prefixing sudo when configured.
func (m *Manager) command(flags, names []string) (string, []string) {
	args := make([]string, 0, len(flags)+len(m.cfg.ExtraArgs)+len(names)+1)
	args = append(args, flags...)
	args = append(args, m.cfg.ExtraArgs...)
	args = append(args, names...)

	if m.cfg.Sudo {
		return "sudo", append([]string{m.cfg.Command}, args...)
	}
	return m.cfg.Command, args
}

// ParsePackageList reads one package per line, keeping the first
// whitespace-separated field (the name) and ignoring blank lines.
func ParsePackageList(r io.Reader) (domain.PackageSet, error) {
	set := domain.PackageSet{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		set.Add(fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read package list")
	}
	return set, nil
}
