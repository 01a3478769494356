// Package console runs colorsay as an interactive terminal chat: the local
// user is a chat session, command lines are dispatched through the
// registry and everything else is broadcast as colored chat.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"colorsay/internal/chat"
	"colorsay/internal/chatcolor"
)

// TerminalHost implements chat.Host on a single terminal. Private lines
// are written as-is; broadcast lines are prefixed with the origin name.
// Palette markup is rendered to ANSI colors.
type TerminalHost struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *chatcolor.Renderer
	reset    string
	log      *log.Logger
}

// NewTerminalHost creates a host writing to w.
func NewTerminalHost(w io.Writer, renderer *chatcolor.Renderer, palette chatcolor.Palette, logger *log.Logger) *TerminalHost {
	return &TerminalHost{
		w:        w,
		renderer: renderer,
		reset:    palette.Reset(),
		log:      logger,
	}
}

// Print writes a private line for target.
func (h *TerminalHost) Print(target *chat.Session, text string) {
	h.write(h.renderer.Render(text))
	h.log.Debug("print", "target", target.String(), "text", h.renderer.Plain(text))
}

// Say writes a broadcast line tagged with origin.
func (h *TerminalHost) Say(origin *chat.Session, text string) {
	line := fmt.Sprintf("%s: %s", origin.String(), h.renderer.Render(text+h.reset))
	h.write(line)
	h.log.Debug("say", "origin", origin.String(), "text", ansi.Strip(line))
}

func (h *TerminalHost) write(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := fmt.Fprintln(h.w, line); err != nil {
		h.log.Warn("Dropped output line", "error", err)
	}
}
