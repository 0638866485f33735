package classify

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	explicitPrompt = "Is this package explicitly installed?"
	editMemoPrompt = "Enter new memo (optional, enter to keep current memo)"
)

// Editor modifies the record of a single managed package.
type Editor struct {
	prompter ports.Prompter
}

// NewEditor creates a new Editor.
func NewEditor(prompter ports.Prompter) *Editor {
	return &Editor{prompter: prompter}
}

// Run loops over edit actions until the user picks Done or cancels.
// The package must already be managed. It reports whether the record changed.
func (e *Editor) Run(ctx context.Context, desired domain.DesiredState, name string) (bool, error) {
	original, ok := desired[name]
	if !ok {
		return false, nil
	}

	for {
		rec := desired[name]
		title := fmt.Sprintf("Edit %s (current explicit status: %t)", name, rec.Explicit)
		idx, err := e.prompter.Select(ctx, title, labels(EditActions), 0)
		if errors.Is(err, domain.ErrPromptCancelled) {
			break
		}
		if err != nil {
			return desired[name] != original, err
		}
		if idx < 0 || idx >= len(EditActions) {
			return desired[name] != original, zerr.With(zerr.Wrap(domain.ErrPromptFailed, "option out of range"), "option", idx)
		}

		switch EditActions[idx] {
		case EditExplicit:
			explicit, err := e.prompter.Confirm(ctx, explicitPrompt, rec.Explicit)
			if errors.Is(err, domain.ErrPromptCancelled) {
				continue
			}
			if err != nil {
				return desired[name] != original, err
			}
			desired[name] = domain.NewPackageRecord(explicit, rec.Memo)
		case EditMemo:
			memo, err := e.prompter.Input(ctx, editMemoPrompt, rec.Memo)
			if errors.Is(err, domain.ErrPromptCancelled) {
				continue
			}
			if err != nil {
				return desired[name] != original, err
			}
			desired[name] = domain.NewPackageRecord(rec.Explicit, memo)
		case EditDone:
			return desired[name] != original, nil
		}
	}

	return desired[name] != original, nil
}
