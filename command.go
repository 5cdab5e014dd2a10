package dirtree

// Action identifies one of the operations understood by the dispatcher
type Action int

const (
	ActionCreate Action = iota + 1
	ActionDelete
	ActionMove
	ActionList
)

// Actions lists every action in dispatch table order
var Actions = []Action{ActionCreate, ActionDelete, ActionMove, ActionList}

// String returns the command keyword, i.e. "CREATE"
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "CREATE"
	case ActionDelete:
		return "DELETE"
	case ActionMove:
		return "MOVE"
	case ActionList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Arity is the number of arguments the action must be called with
func (a Action) Arity() int {
	switch a {
	case ActionCreate, ActionDelete:
		return 1
	case ActionMove:
		return 2
	default:
		return 0
	}
}

// Command is a parsed command line ready for execution
type Command struct {
	Action Action
	Args   []string
	Text   string // Trimmed original line
}
