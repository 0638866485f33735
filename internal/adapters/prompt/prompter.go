// Package prompt implements ports.Prompter. On a terminal it runs small
// Bubble Tea programs; otherwise it falls back to reading plain lines.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/moree/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompter implements ports.Prompter.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	reader      *bufio.Reader
	teaOptions  []tea.ProgramOption
}

var _ ports.Prompter = (*Prompter)(nil)

// New creates a Prompter reading from in and drawing to out. When interactive
// is false prompts are answered line by line.
func New(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          in,
		out:         out,
		interactive: interactive,
		reader:      bufio.NewReader(in),
	}
}

// NewTerminal creates a Prompter on stdin and stderr that is interactive
// only when both are terminals.
func NewTerminal() *Prompter {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
	return New(os.Stdin, os.Stderr, interactive)
}

// WithTeaOptions appends options passed to every Bubble Tea program.
func (p *Prompter) WithTeaOptions(opts ...tea.ProgramOption) *Prompter {
	p.teaOptions = append(p.teaOptions, opts...)
	return p
}

// Show prints a heading followed by body.
func (p *Prompter) Show(title, body string) {
	if p.interactive {
		title = style.Title.Render(title)
	}
	if body == "" {
		_, _ = fmt.Fprintf(p.out, "%s\n", title)
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s\n%s\n\n", title, body)
}

// Select asks the user to pick one option and returns its index.
func (p *Prompter) Select(ctx context.Context, title string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, zerr.Wrap(domain.ErrPromptFailed, "select has no options")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	if !p.interactive {
		return p.selectLine(ctx, title, options, defaultIndex)
	}

	final, err := p.run(ctx, newSelectModel(title, options, defaultIndex))
	if err != nil {
		return 0, err
	}
	m, ok := final.(selectModel)
	if !ok || m.cancelled || !m.chosen {
		return 0, domain.ErrPromptCancelled
	}
	return m.cursor, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, title string, defaultValue bool) (bool, error) {
	if !p.interactive {
		return p.confirmLine(ctx, title, defaultValue)
	}

	def := 1
	if defaultValue {
		def = 0
	}
	idx, err := p.Select(ctx, title, []string{"Yes", "No"}, def)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// Input asks for a line of text pre-filled with initial.
func (p *Prompter) Input(ctx context.Context, title, initial string) (string, error) {
	if !p.interactive {
		return p.inputLine(ctx, title, initial)
	}

	final, err := p.run(ctx, newInputModel(title, initial))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.cancelled || !m.done {
		return "", domain.ErrPromptCancelled
	}
	return m.Value(), nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}, p.teaOptions...)

	final, err := tea.NewProgram(model, opts...).Run()
	switch {
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled):
		return nil, domain.ErrPromptCancelled
	case err != nil:
		return nil, errors.Join(domain.ErrPromptFailed, err)
	}
	return final, nil
}

// readLine reads one line without its terminator. EOF before any input
// cancels the prompt.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.ErrPromptCancelled
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return "", domain.ErrPromptCancelled
		}
		return "", errors.Join(domain.ErrPromptFailed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) selectLine(ctx context.Context, title string, options []string, def int) (int, error) {
	_, _ = fmt.Fprintln(p.out, title)
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		_, _ = fmt.Fprintf(p.out, "Choice [%s]: ", options[def])
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if idx, ok := parseChoice(options, strings.TrimSpace(line), def); ok {
			return idx, nil
		}
		_, _ = fmt.Fprintln(p.out, "Invalid choice.")
	}
}

// parseChoice accepts an empty answer (the default), a 1-based number,
// an option label or an unambiguous first letter, all case-insensitive.
func parseChoice(options []string, answer string, def int) (int, bool) {
	if answer == "" {
		return def, true
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if strings.EqualFold(opt, answer) {
			return i, true
		}
	}
	if r := []rune(answer); len(r) == 1 {
		if i := matchInitial(options, r[0]); i >= 0 {
			return i, true
		}
	}
	return 0, false
}

func (p *Prompter) confirmLine(ctx context.Context, title string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", title, hint)
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// clearInput is the line-mode answer that empties a pre-filled value.
const clearInput = "-"

// inputLine keeps initial when the answer is empty and clears it when the
// answer is clearInput.
func (p *Prompter) inputLine(ctx context.Context, title, initial string) (string, error) {
	if initial != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s] (%s to clear): ", title, initial, clearInput)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", title)
	}
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	switch strings.TrimSpace(line) {
	case "":
		return initial, nil
	case clearInput:
		return "", nil
	}
	return line, nil
}
