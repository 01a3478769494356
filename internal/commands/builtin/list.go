package builtin

import (
	"fmt"

	"colorsay/internal/chat"
	"colorsay/internal/chatcolor"
	"colorsay/internal/commands"
)

// ListCommand prints every palette color. The chat gets the colored names
// two per line; the requester additionally gets one line per color with its
// RGB channels.
type ListCommand struct {
	host    chat.Host
	palette chatcolor.Palette
	name    string
}

// NewListCommand creates the list command for palette.
func NewListCommand(host chat.Host, palette chatcolor.Palette, name string) *ListCommand {
	return &ListCommand{host: host, palette: palette, name: name}
}

// Name returns the command name "list" for registration and lookup.
func (c *ListCommand) Name() string {
	return "list"
}

// Description returns a brief description of what the list command does.
func (c *ListCommand) Description() string {
	return "Lists all available colors"
}

// Usage returns the syntax of the list command.
func (c *ListCommand) Usage() string {
	return "list"
}

// Help returns the long-form help text.
func (c *ListCommand) Help() string {
	return "Lists all available colors"
}

// Invoke ignores its arguments.
func (c *ListCommand) Invoke(target *chat.Session, _ string, _ []string) commands.Result {
	p := c.palette
	reset := p.Reset()

	banner := fmt.Sprintf("%s Available colors", tag(p, c.name))
	c.host.Say(target, banner)
	c.host.Print(target, banner)

	pager := chatcolor.NewPager(p.Min(), func(line string) {
		c.host.Say(target, line)
	})

	for id := p.Min(); id < p.Max(); id++ {
		e := p.Entry(id)
		fragment := fmt.Sprintf("(%d) %s%s%s, ", e.ID, e.Token, e.Name, reset)
		c.host.Print(target, fragment+channels(e.RGB))
		pager.Add(id, fragment)
	}

	last := p.Entry(p.Max())
	c.host.Print(target, fmt.Sprintf("(%d) %s%s%s, %s", last.ID, last.Token, last.Name, reset, channels(last.RGB)))
	pager.Last(fmt.Sprintf("(%d) %s%s", last.ID, last.Token, last.Name))

	return commands.Stop
}

func channels(c chatcolor.RGB) string {
	return fmt.Sprintf("r%d g%d b%d", c.R, c.G, c.B)
}
