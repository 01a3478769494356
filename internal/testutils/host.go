// Package testutils provides a recording chat host, palette fixtures and
// assertion helpers for colorsay tests.
package testutils

import (
	"fmt"
	"sync"

	"colorsay/internal/chat"
)

// Line is a single output line captured by RecordingHost.
type Line struct {
	Target *chat.Session
	Text   string
}

// RecordingHost implements chat.Host and keeps every line in memory.
type RecordingHost struct {
	mu        sync.Mutex
	printed   []Line
	broadcast []Line
	order     []string
}

// NewRecordingHost creates an empty recording host.
func NewRecordingHost() *RecordingHost {
	return &RecordingHost{}
}

// Print records a private line.
func (h *RecordingHost) Print(target *chat.Session, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.printed = append(h.printed, Line{Target: target, Text: text})
	h.order = append(h.order, "print:"+text)
}

// Say records a broadcast line.
func (h *RecordingHost) Say(origin *chat.Session, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast = append(h.broadcast, Line{Target: origin, Text: text})
	h.order = append(h.order, "say:"+text)
}

// Printed returns the text of every private line.
func (h *RecordingHost) Printed() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return texts(h.printed)
}

// Broadcast returns the text of every broadcast line.
func (h *RecordingHost) Broadcast() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return texts(h.broadcast)
}

// PrintedTo returns the private lines addressed to target.
func (h *RecordingHost) PrintedTo(target *chat.Session) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, l := range h.printed {
		if l.Target == target {
			out = append(out, l.Text)
		}
	}
	return out
}

// Transcript returns all lines in emission order, prefixed with
// "print:" or "say:".
func (h *RecordingHost) Transcript() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.order...)
}

func texts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

var (
	sessionCounter uint64
	sessionMutex   sync.Mutex
)

// NewTestSession returns a session with a deterministic UUID-shaped ID:
// 00000001-0000-4000-8000-000000000001, 00000002-..., and so on.
func NewTestSession(name string) *chat.Session {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	sessionCounter++
	return &chat.Session{
		ID:   fmt.Sprintf("%08x-0000-4000-8000-%012x", sessionCounter, sessionCounter),
		Name: name,
	}
}
