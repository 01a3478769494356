// Package chat defines the participants and output channels the command
// core talks to. Sessions identify who issued a command; a Host delivers
// text either privately to that session or to everyone in the chat.
package chat

import (
	"github.com/google/uuid"
)

// Session identifies the requester of a command. The core treats it as
// opaque and only hands it back to the Host.
type Session struct {
	ID   string
	Name string
}

// NewSession creates a session with a fresh random ID.
func NewSession(name string) *Session {
	return &Session{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// String returns the display name, falling back to the ID.
func (s *Session) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
