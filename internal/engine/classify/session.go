// Package classify implements the interactive workflows that record the user's
// intent for installed packages.
package classify

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome describes how a session ended.
type Outcome int

const (
	// OutcomeCompleted means every candidate was visited.
	OutcomeCompleted Outcome = iota
	// OutcomeQuit means the user stopped the session early.
	OutcomeQuit
)

func (o Outcome) String() string {
	if o == OutcomeQuit {
		return "quit"
	}
	return "completed"
}

// Result is the terminal state of a session.
type Result struct {
	Outcome Outcome
	// Save reports whether the caller should persist the desired state.
	Save bool
	// Classified counts the records written during the session.
	Classified int
}

type state int

const (
	stateRunning state = iota
	stateAwaitingSave
	stateDone
)

const (
	decisionPrompt = "Did you explicitly install this package?"
	memoPrompt     = "Why did you install this package? (optional)"
	savePrompt     = "Would you like to save your progress?"
)

// Session walks a candidate list and asks the user to classify each package.
type Session struct {
	prompter ports.Prompter
	pm       ports.PackageManager
	logger   ports.Logger
}

// NewSession creates a new Session.
func NewSession(prompter ports.Prompter, pm ports.PackageManager, logger ports.Logger) *Session {
	return &Session{prompter: prompter, pm: pm, logger: logger}
}

// Run classifies candidates, writing answers into desired as they are given.
// Packages already marked explicit are skipped. Writes are never rolled back:
// Result.Save only tells the caller whether to persist them.
// Cancelling the decision prompt counts as Quit; cancelling the save prompt
// counts as declining to save.
func (s *Session) Run(ctx context.Context, desired domain.DesiredState, candidates []string) (Result, error) {
	res := Result{Outcome: OutcomeCompleted, Save: true}
	st := stateRunning
	next := 0

	for st != stateDone {
		switch st {
		case stateRunning:
			if next >= len(candidates) {
				st = stateDone
				continue
			}
			name := candidates[next]
			next++

			if desired.IsExplicit(name) {
				continue
			}

			d, err := s.classify(ctx, desired, name)
			if err != nil {
				return Result{Outcome: res.Outcome, Classified: res.Classified}, err
			}
			switch d {
			case DecisionQuit:
				res.Outcome = OutcomeQuit
				st = stateAwaitingSave
			case DecisionYes, DecisionNo:
				res.Classified++
			case DecisionSkip:
			}

		case stateAwaitingSave:
			save, err := s.prompter.Confirm(ctx, savePrompt, true)
			switch {
			case errors.Is(err, domain.ErrPromptCancelled):
				save = false
			case err != nil:
				return Result{Outcome: res.Outcome, Classified: res.Classified}, err
			}
			res.Save = save
			st = stateDone
		}
	}

	return res, nil
}

// classify handles a single package and returns the decision that was applied.
func (s *Session) classify(ctx context.Context, desired domain.DesiredState, name string) (Decision, error) {
	details, err := s.pm.Describe(ctx, name)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("could not describe %s: %v", name, err))
		details = ""
	}
	s.prompter.Show("Package: "+name, details)

	idx, err := s.prompter.Select(ctx, decisionPrompt, labels(Decisions), 0)
	if errors.Is(err, domain.ErrPromptCancelled) {
		return DecisionQuit, nil
	}
	if err != nil {
		return DecisionQuit, err
	}
	if idx < 0 || idx >= len(Decisions) {
		return DecisionQuit, zerr.With(zerr.Wrap(domain.ErrPromptFailed, "option out of range"), "option", idx)
	}

	d := Decisions[idx]
	switch d {
	case DecisionYes:
		memo, err := s.prompter.Input(ctx, memoPrompt, "")
		if errors.Is(err, domain.ErrPromptCancelled) {
			return DecisionQuit, nil
		}
		if err != nil {
			return DecisionQuit, err
		}
		desired[name] = domain.NewPackageRecord(true, memo)
	case DecisionNo:
		desired[name] = domain.NewPackageRecord(false, "")
	case DecisionSkip, DecisionQuit:
	}
	return d, nil
}
