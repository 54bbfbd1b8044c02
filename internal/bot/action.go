package bot

import "fmt"

// ActionType enumerates the moves the game engine accepts.
type ActionType int

const (
	Fold ActionType = iota
	Call
	Check
	Raise
	Discard
)

// String returns the action type name.
func (t ActionType) String() string {
	switch t {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Check:
		return "check"
	case Raise:
		return "raise"
	case Discard:
		return "discard"
	default:
		return "unknown"
	}
}

// Action is a decided move. Amount is the raise target in chips; Index is
// the hole card position to discard. Both are zero for the other types.
type Action struct {
	Type   ActionType
	Amount int
	Index  int
}

// String renders the action for logs.
func (a Action) String() string {
	switch a.Type {
	case Raise:
		return fmt.Sprintf("raise %d", a.Amount)
	case Discard:
		return fmt.Sprintf("discard %d", a.Index)
	default:
		return a.Type.String()
	}
}

// FoldAction returns a fold.
func FoldAction() Action { return Action{Type: Fold} }

// CallAction returns a call.
func CallAction() Action { return Action{Type: Call} }

// CheckAction returns a check.
func CheckAction() Action { return Action{Type: Check} }

// RaiseAction returns a raise to the given chip target.
func RaiseAction(amount int) Action { return Action{Type: Raise, Amount: amount} }

// DiscardAction returns a discard of the hole card at index.
func DiscardAction(index int) Action { return Action{Type: Discard, Index: index} }
