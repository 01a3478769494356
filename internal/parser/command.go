// Package parser splits raw input lines into a command name, the raw
// argument remainder and a shell-style token vector.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
)

// ErrEmptyInput is returned when the input holds no tokens.
var ErrEmptyInput = errors.New("empty input")

// Command is a tokenized input line.
type Command struct {
	// Name is the first token as typed, without case folding.
	Name string
	// Args is the raw text following the name, with surrounding blanks trimmed.
	Args string
	// Argv holds every token including Name at position 0.
	Argv []string
}

// ParseCommand tokenizes input. Quoting follows POSIX shell rules, so
// `help "list"` yields argv ["help", "list"].
func ParseCommand(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	argv, err := shellquote.Split(input)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %q: %w", input, err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyInput
	}

	var args string
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		args = strings.TrimSpace(input[i:])
	}

	return &Command{
		Name: argv[0],
		Args: args,
		Argv: argv,
	}, nil
}
