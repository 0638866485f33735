package ports

import "context"

// Prompter asks the user questions during interactive operations.
// Implementations return domain.ErrPromptCancelled when the user interrupts a prompt.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Select asks the user to pick one of options and returns its index.
	Select(ctx context.Context, title string, options []string, defaultIndex int) (int, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title string, defaultValue bool) (bool, error)

	// Input asks for a line of free text, pre-filled with initial.
	Input(ctx context.Context, title, initial string) (string, error)

	// Show displays a block of text with a heading.
	Show(title, body string)
}
