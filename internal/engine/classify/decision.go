package classify

// Decision is the user's answer for a single package.
type Decision int

const (
	// DecisionYes records the package as explicit.
	DecisionYes Decision = iota
	// DecisionNo records the package as a dependency.
	DecisionNo
	// DecisionSkip leaves the package untouched.
	DecisionSkip
	// DecisionQuit stops the session.
	DecisionQuit
)

// Decisions lists every decision in prompt order.
var Decisions = []Decision{DecisionYes, DecisionNo, DecisionSkip, DecisionQuit}

func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "Yes"
	case DecisionNo:
		return "No"
	case DecisionSkip:
		return "Skip"
	case DecisionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EditAction is a step of the edit loop.
type EditAction int

const (
	// EditExplicit changes the explicit flag.
	EditExplicit EditAction = iota
	// EditMemo changes the memo.
	EditMemo
	// EditDone ends the loop.
	EditDone
)

// EditActions lists every edit action in prompt order.
var EditActions = []EditAction{EditExplicit, EditMemo, EditDone}

func (a EditAction) String() string {
	switch a {
	case EditExplicit:
		return "Explicit status"
	case EditMemo:
		return "Memo"
	case EditDone:
		return "Done"
	default:
		return "Unknown"
	}
}

func labels[T interface{ String() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}
