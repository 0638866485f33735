package classify_test

import (
	"context"
	"testing"

	"go.trai.ch/moree/internal/core/domain"
)

// answer is one scripted reply. Exactly one field is meaningful per prompt kind.
type answer struct {
	index int
	yes   bool
	text  string
	err   error
}

// scriptedPrompter replays answers in order and fails the test when it runs dry
// or when a prompt of the wrong kind is asked.
type scriptedPrompter struct {
	t       *testing.T
	kinds   []string
	answers []answer
	shown   []string
	titles  []string
}

func script(t *testing.T) *scriptedPrompter {
	t.Helper()
	p := &scriptedPrompter{t: t}
	t.Cleanup(func() {
		if len(p.answers) > 0 {
			t.Errorf("%d scripted answers were not consumed", len(p.answers))
		}
	})
	return p
}

func (p *scriptedPrompter) sel(index int) *scriptedPrompter {
	return p.push("select", answer{index: index})
}

func (p *scriptedPrompter) confirm(yes bool) *scriptedPrompter {
	return p.push("confirm", answer{yes: yes})
}

func (p *scriptedPrompter) input(text string) *scriptedPrompter {
	return p.push("input", answer{text: text})
}

func (p *scriptedPrompter) cancel(kind string) *scriptedPrompter {
	return p.push(kind, answer{err: domain.ErrPromptCancelled})
}

func (p *scriptedPrompter) push(kind string, a answer) *scriptedPrompter {
	p.kinds = append(p.kinds, kind)
	p.answers = append(p.answers, a)
	return p
}

func (p *scriptedPrompter) next(kind, title string) answer {
	p.t.Helper()
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected %s prompt %q", kind, title)
	}
	if p.kinds[0] != kind {
		p.t.Fatalf("expected %s prompt, got %s prompt %q", p.kinds[0], kind, title)
	}
	a := p.answers[0]
	p.kinds, p.answers = p.kinds[1:], p.answers[1:]
	p.titles = append(p.titles, title)
	return a
}

func (p *scriptedPrompter) Select(_ context.Context, title string, _ []string, _ int) (int, error) {
	a := p.next("select", title)
	return a.index, a.err
}

func (p *scriptedPrompter) Confirm(_ context.Context, title string, _ bool) (bool, error) {
	a := p.next("confirm", title)
	return a.yes, a.err
}

func (p *scriptedPrompter) Input(_ context.Context, title, _ string) (string, error) {
	a := p.next("input", title)
	return a.text, a.err
}

func (p *scriptedPrompter) Show(title, _ string) {
	p.shown = append(p.shown, title)
}
