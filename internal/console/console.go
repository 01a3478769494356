package console

import (
	"errors"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/muesli/termenv"

	"colorsay/internal/chat"
	"colorsay/internal/chatcolor"
	"colorsay/internal/commands"
	"colorsay/internal/commands/builtin"
	"colorsay/internal/logger"
	"colorsay/internal/parser"
)

// Options configures a Console.
type Options struct {
	Name    string
	Version string
	User    string
	Palette *chatcolor.Table
	// Plain disables ANSI colors.
	Plain bool
}

// Console wires a registry with the built-in commands to a terminal host.
type Console struct {
	registry *commands.Registry
	palette  *chatcolor.Table
	host     chat.Host
	session  *chat.Session
}

// New creates a console writing to w and registers the built-in commands.
func New(w io.Writer, opts Options) *Console {
	var profile []termenv.Profile
	if opts.Plain {
		profile = append(profile, termenv.Ascii)
	}
	renderer := chatcolor.NewRenderer(opts.Palette, w, profile...)
	host := NewTerminalHost(w, renderer, opts.Palette, logger.NewStyledLogger("Console"))

	registry := commands.NewRegistry()
	builtin.Register(registry, builtin.Options{
		Host:    host,
		Palette: opts.Palette,
		Name:    opts.Name,
		Version: opts.Version,
	})

	return &Console{
		registry: registry,
		palette:  opts.Palette,
		host:     host,
		session:  chat.NewSession(opts.User),
	}
}

// Registry returns the console's command registry.
func (c *Console) Registry() *commands.Registry {
	return c.registry
}

// Session returns the local user's session.
func (c *Console) Session() *chat.Session {
	return c.session
}

// ProcessInput handles one input line from the local user. Registered
// command names are dispatched; any other input, or a command answering
// Continue, is broadcast as chat with {color} tags expanded.
func (c *Console) ProcessInput(line string) {
	cmd, err := parser.ParseCommand(line)
	if errors.Is(err, parser.ErrEmptyInput) {
		return
	}
	if err != nil {
		// Unbalanced quotes are common in chat ("I'm here"); only a line
		// addressed to a command has to tokenize.
		if fields := strings.Fields(line); c.registry.Exists(fields[0]) {
			logger.Error("Invalid input", "input", line, "error", err)
			c.host.Print(c.session, "Error: "+err.Error())
			return
		}
		c.say(line)
		return
	}

	c.handle(cmd.Name, cmd.Args, cmd.Argv, line)
}

// ProcessArgs handles an input line that was already split into argv,
// such as command line arguments. The tokens are used as they are; the
// chat text and the raw argument remainder are the tokens joined by spaces.
func (c *Console) ProcessArgs(argv []string) {
	if len(argv) == 0 {
		return
	}
	c.handle(argv[0], strings.Join(argv[1:], " "), argv, strings.Join(argv, " "))
}

func (c *Console) handle(name, args string, argv []string, raw string) {
	result := commands.Continue
	if c.registry.Exists(name) {
		var err error
		result, err = c.registry.Dispatch(name, args, argv, c.session)
		if err != nil {
			logger.Error("Command failed", "command", name, "error", err)
			c.host.Print(c.session, "Error: "+err.Error())
			return
		}
	}

	if result == commands.Continue {
		c.say(raw)
	}
}

func (c *Console) say(raw string) {
	c.host.Say(c.session, chatcolor.Expand(c.palette, strings.TrimSpace(raw)))
}

// Run starts the interactive shell and blocks until the user exits.
// Lines are read raw and handed to ProcessInput, so chat text is never
// split by the shell.
func (c *Console) Run(greeting string) {
	sh := ishell.New()
	defer sh.Close()
	sh.SetPrompt(c.session.String() + "> ")

	sh.Println(greeting)
	sh.Println("Type 'help' for commands, 'exit' to quit. Anything else is said in chat; use {red}, {gold}, ... for colors.")

	for {
		line, err := sh.ReadLineErr()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("Console input closed", "error", err)
			}
			return
		}
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return
		}
		c.ProcessInput(line)
	}
}
