// Package commands provides the command abstraction and the registry that
// maps case-insensitive command names to commands and dispatches to them.
package commands

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"colorsay/internal/chat"
	"colorsay/internal/logger"
)

// ErrUnknownCommand is returned when dispatching a name with no registered
// command. Callers are expected to check Exists first.
var ErrUnknownCommand = errors.New("unknown command")

// Registry manages command registration and lookup.
// Names are compared after lowercase folding; nothing else is normalized.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// Register adds cmd to the registry. A command whose name folds to an
// already registered name replaces it.
func (r *Registry) Register(cmd Command) {
	key := normalize(cmd.Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[key]; exists {
		logger.Warn("Replacing registered command", "command", key)
	}
	r.commands[key] = cmd
	logger.Debug("Registered command", "command", key)
}

// Get retrieves a command by name, ignoring case.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[normalize(name)]
	return cmd, exists
}

// Exists reports whether a command is registered under name, ignoring case.
func (r *Registry) Exists(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// All returns every registered command in no particular order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		commands = append(commands, cmd)
	}
	return commands
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Dispatch invokes the command registered under name and returns its result
// unchanged. An unregistered name yields an error wrapping ErrUnknownCommand.
func (r *Registry) Dispatch(name, args string, argv []string, target *chat.Session) (Result, error) {
	cmd, exists := r.Get(name)
	if !exists {
		return Stop, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	logger.CommandExecution(cmd.Name(), target.String(), argv)
	return cmd.Invoke(target, args, argv), nil
}
