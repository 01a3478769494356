package commands

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorsay/internal/chat"
)

// MockCommand implements Command for testing
type MockCommand struct {
	name        string
	description string
	usage       string
	help        string
	invokeFunc  func(target *chat.Session, args string, argv []string) Result
}

func NewMockCommand(name string) *MockCommand {
	return &MockCommand{
		name:        name,
		description: fmt.Sprintf("Mock command: %s", name),
		usage:       name,
		help:        fmt.Sprintf("Help for %s", name),
	}
}

func (m *MockCommand) Name() string        { return m.name }
func (m *MockCommand) Description() string { return m.description }
func (m *MockCommand) Usage() string       { return m.usage }
func (m *MockCommand) Help() string        { return m.help }

func (m *MockCommand) Invoke(target *chat.Session, args string, argv []string) Result {
	if m.invokeFunc != nil {
		return m.invokeFunc(target, args, argv)
	}
	return Stop
}

func TestRegistry_NewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.commands)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ExistsIgnoresCase(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewMockCommand("List"))

	for _, name := range []string{"List", "list", "LIST", "lIsT"} {
		assert.True(t, registry.Exists(name), name)
	}
	assert.False(t, registry.Exists("lis"))
	assert.False(t, registry.Exists(" list"), "names are not trimmed")
	assert.False(t, registry.Exists(""))
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry := NewRegistry()
	first := NewMockCommand("dup")
	second := NewMockCommand("DUP")

	registry.Register(first)
	registry.Register(second)

	assert.Equal(t, 1, registry.Len())
	cmd, exists := registry.Get("Dup")
	require.True(t, exists)
	assert.Same(t, second, cmd)
}

func TestRegistry_All(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.All())

	testCommands := []Command{
		NewMockCommand("cmd1"),
		NewMockCommand("cmd2"),
		NewMockCommand("cmd3"),
	}
	for _, cmd := range testCommands {
		registry.Register(cmd)
	}

	assert.ElementsMatch(t, testCommands, registry.All())
}

func TestRegistry_Dispatch(t *testing.T) {
	registry := NewRegistry()
	target := &chat.Session{ID: "1", Name: "alice"}

	var (
		gotTarget *chat.Session
		gotArgs   string
		gotArgv   []string
	)
	cmd := NewMockCommand("echo")
	cmd.invokeFunc = func(target *chat.Session, args string, argv []string) Result {
		gotTarget, gotArgs, gotArgv = target, args, argv
		return Continue
	}
	registry.Register(cmd)

	result, err := registry.Dispatch("ECHO", "a b", []string{"ECHO", "a", "b"}, target)
	require.NoError(t, err)
	assert.Equal(t, Continue, result)
	assert.Same(t, target, gotTarget)
	assert.Equal(t, "a b", gotArgs)
	assert.Equal(t, []string{"ECHO", "a", "b"}, gotArgv)
}

func TestRegistry_DispatchUnknown(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewMockCommand("known"))

	_, err := registry.Dispatch("missing", "", []string{"missing"}, chat.NewSession("bob"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Contains(t, err.Error(), "unknown command: missing")
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "stop", Stop.String())
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "unknown", Result(9).String())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	numGoroutines := 10

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registry.Register(NewMockCommand(fmt.Sprintf("cmd%d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("CMD%d", i)
			assert.True(t, registry.Exists(name))
			_, err := registry.Dispatch(name, "", []string{name}, nil)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, numGoroutines, registry.Len())
}
