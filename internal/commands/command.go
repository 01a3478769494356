package commands

import "colorsay/internal/chat"

// Result tells the caller what to do with the input after a command ran.
type Result int

const (
	// Stop means the input was fully handled and must not be processed further.
	Stop Result = iota
	// Continue lets the input pass through to the host's default handling.
	Continue
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Stop:
		return "stop"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// Command is a named, self-describing unit of behavior.
// The name is the registry key and must not change once registered.
type Command interface {
	Name() string
	// Description is a one-line summary shown in command listings.
	Description() string
	// Usage is the invocation syntax.
	Usage() string
	// Help is the long-form text shown by "help <name>".
	Help() string
	// Invoke runs the command for target. args is the raw input after the
	// command name; argv is the full token vector with the name at argv[0].
	Invoke(target *chat.Session, args string, argv []string) Result
}
