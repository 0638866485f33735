package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moree/internal/adapters/prompt"
	"go.trai.ch/moree/internal/core/domain"
)

func linePrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out, false), &out
}

func TestSelect_Line(t *testing.T) {
	t.Parallel()

	opts := []string{"Yes", "No", "Skip", "Quit"}
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "default", input: "\n", want: 1},
		{name: "number", input: "3\n", want: 2},
		{name: "label", input: "quit\n", want: 3},
		{name: "initial", input: "y\n", want: 0},
		{name: "retry after invalid", input: "9\nmaybe\nn\n", want: 1},
		{name: "no trailing newline", input: "s", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, out := linePrompter(tt.input)
			got, err := p.Select(context.Background(), "Explicit?", opts, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "  4) Quit\n")
			assert.Contains(t, out.String(), "Choice [No]: ")
		})
	}
}

func TestSelect_EOFCancels(t *testing.T) {
	t.Parallel()

	p, _ := linePrompter("")
	_, err := p.Select(context.Background(), "Explicit?", []string{"Yes", "No"}, 0)
	require.ErrorIs(t, err, domain.ErrPromptCancelled)
}

func TestSelect_NoOptions(t *testing.T) {
	t.Parallel()

	p, _ := linePrompter("\n")
	_, err := p.Select(context.Background(), "Empty", nil, 0)
	require.ErrorIs(t, err, domain.ErrPromptFailed)
}

func TestSelect_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := linePrompter("1\n")
	_, err := p.Select(ctx, "Explicit?", []string{"Yes", "No"}, 0)
	require.ErrorIs(t, err, domain.ErrPromptCancelled)
}

func TestConfirm_Line(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{input: "\n", def: true, want: true},
		{input: "\n", def: false, want: false},
		{input: "YES\n", def: false, want: true},
		{input: "n\n", def: true, want: false},
		{input: "what\ny\n", def: false, want: true},
	}

	for _, tt := range tests {
		p, out := linePrompter(tt.input)
		got, err := p.Confirm(context.Background(), "Save?", tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		if tt.def {
			assert.Contains(t, out.String(), "Save? [Y/n]: ")
		} else {
			assert.Contains(t, out.String(), "Save? [y/N]: ")
		}
	}
}

func TestInput_Line(t *testing.T) {
	t.Parallel()

	p, out := linePrompter("for work\n\n-\n")

	got, err := p.Input(context.Background(), "Memo", "")
	require.NoError(t, err)
	assert.Equal(t, "for work", got)
	assert.Contains(t, out.String(), "Memo: ")

	got, err = p.Input(context.Background(), "Memo", "kept")
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
	assert.Contains(t, out.String(), "Memo [kept] (- to clear): ")

	got, err = p.Input(context.Background(), "Memo", "old memo")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = p.Input(context.Background(), "Memo", "")
	require.ErrorIs(t, err, domain.ErrPromptCancelled)
}

func TestShow_Line(t *testing.T) {
	t.Parallel()

	p, out := linePrompter("")
	p.Show("Package: zsh", "Name : zsh\nVersion : 5.9")
	p.Show("Heading", "")
	assert.Equal(t, "Package: zsh\nName : zsh\nVersion : 5.9\n\nHeading\n", out.String())
}
