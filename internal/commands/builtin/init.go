// Package builtin provides the commands every colorsay registry starts with:
// help, version and list.
package builtin

import (
	"colorsay/internal/chat"
	"colorsay/internal/chatcolor"
	"colorsay/internal/commands"
)

// Options carries what the built-in commands need from the host process.
type Options struct {
	Host    chat.Host
	Palette chatcolor.Palette
	// Name is the plugin name shown in chat tags.
	Name    string
	Version string
}

// Register adds the built-in commands to registry.
func Register(registry *commands.Registry, opts Options) {
	registry.Register(NewHelpCommand(registry, opts.Host))
	registry.Register(NewVersionCommand(opts.Host, opts.Palette, opts.Name, opts.Version))
	registry.Register(NewListCommand(opts.Host, opts.Palette, opts.Name))
}
