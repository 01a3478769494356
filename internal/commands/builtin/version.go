package builtin

import (
	"fmt"

	"colorsay/internal/chat"
	"colorsay/internal/chatcolor"
	"colorsay/internal/commands"
)

// VersionCommand answers with the plugin version, privately and in chat.
type VersionCommand struct {
	host    chat.Host
	palette chatcolor.Palette
	name    string
	version string
}

// NewVersionCommand creates the version command. name is the plugin name
// shown in the chat tag.
func NewVersionCommand(host chat.Host, palette chatcolor.Palette, name, version string) *VersionCommand {
	return &VersionCommand{host: host, palette: palette, name: name, version: version}
}

// Name returns the command name "version" for registration and lookup.
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string {
	return "Prints the version of this plugin"
}

// Usage returns the syntax of the version command.
func (c *VersionCommand) Usage() string {
	return "version"
}

// Help returns the long-form help text.
func (c *VersionCommand) Help() string {
	return "Prints the version of this plugin"
}

// Invoke ignores its arguments.
func (c *VersionCommand) Invoke(target *chat.Session, _ string, _ []string) commands.Result {
	c.host.Print(target, fmt.Sprintf("Plugin version %s", c.version))
	c.host.Say(target, fmt.Sprintf("%s Plugin version %s", tag(c.palette, c.name), c.version))
	return commands.Stop
}

// tag renders "[name]" with the name in a random palette color.
func tag(p chatcolor.Palette, name string) string {
	return fmt.Sprintf("[%s%s%s]", p.Random().Token, name, p.Reset())
}
