package builtin

import (
	"fmt"

	"colorsay/internal/chat"
	"colorsay/internal/commands"
)

// HelpCommand implements the help command for listing the registered
// commands or showing the usage and help text of one of them.
type HelpCommand struct {
	registry *commands.Registry
	host     chat.Host
}

// NewHelpCommand creates a help command that introspects registry.
func NewHelpCommand(registry *commands.Registry, host chat.Host) *HelpCommand {
	return &HelpCommand{registry: registry, host: host}
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Prints a list of available commands, or more specific help on a command"
}

// Usage returns the syntax of the help command.
func (c *HelpCommand) Usage() string {
	return "help <command>"
}

// Help returns the long-form help text.
func (c *HelpCommand) Help() string {
	return "Prints a list of available commands, or more specific help on a command"
}

// Invoke prints help to target only. A bare "help" lists every command,
// "help <name>" describes one, anything longer prints the usage line.
func (c *HelpCommand) Invoke(target *chat.Session, _ string, argv []string) commands.Result {
	switch len(argv) {
	case 1:
		c.showAllCommands(target)
	case 2:
		c.showCommandHelp(target, argv[1])
	default:
		c.host.Print(target, fmt.Sprintf("Usage: %s", c.Usage()))
	}
	return commands.Stop
}

func (c *HelpCommand) showAllCommands(target *chat.Session) {
	c.host.Print(target, "Available commands:")
	for _, cmd := range c.registry.All() {
		c.host.Print(target, fmt.Sprintf("%s: %s", cmd.Name(), cmd.Description()))
	}
}

func (c *HelpCommand) showCommandHelp(target *chat.Session, name string) {
	cmd, exists := c.registry.Get(name)
	if !exists {
		c.host.Print(target, fmt.Sprintf("Unknown command \"%s\"", name))
		return
	}
	c.host.Print(target, fmt.Sprintf("Usage: %s\n\n%s", cmd.Usage(), cmd.Help()))
}
