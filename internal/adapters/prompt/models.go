package prompt

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/moree/internal/ui/style"
)

// selectModel lets the user pick one option with the arrow keys or by
// typing the first letter of an option.
type selectModel struct {
	title     string
	options   []string
	cursor    int
	chosen    bool
	cancelled bool
}

func newSelectModel(title string, options []string, defaultIndex int) selectModel {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	return selectModel{title: title, options: options, cursor: defaultIndex}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.options)
	default:
		if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
			if i := matchInitial(m.options, key.Runes[0]); i >= 0 {
				m.cursor = i
				m.chosen = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(style.Title.Render(m.title))
	if m.chosen {
		b.WriteString(" " + style.Selected.Render(m.options[m.cursor]) + "\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(style.Selected.Render(style.Pointer+" "+opt) + "\n")
			continue
		}
		b.WriteString("  " + opt + "\n")
	}
	b.WriteString(style.Muted.Render("↑/↓ move • enter select • esc cancel") + "\n")
	return b.String()
}

// matchInitial returns the option whose first letter is r, or -1 when no
// option or more than one option matches.
func matchInitial(options []string, r rune) int {
	found := -1
	for i, opt := range options {
		if opt == "" {
			continue
		}
		if unicode.ToLower([]rune(opt)[0]) == unicode.ToLower(r) {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

// inputModel asks for one line of text.
type inputModel struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newInputModel(title, initial string) inputModel {
	ti := textinput.New()
	ti.Prompt = style.Pointer + " "
	ti.CharLimit = 1024
	ti.SetValue(initial)
	ti.Focus()
	return inputModel{title: title, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return style.Title.Render(m.title) + " " + style.Selected.Render(m.input.Value()) + "\n"
	}
	if m.cancelled {
		return style.Title.Render(m.title) + "\n"
	}
	return style.Title.Render(m.title) + "\n" + m.input.View() + "\n"
}

func (m inputModel) Value() string {
	return m.input.Value()
}
