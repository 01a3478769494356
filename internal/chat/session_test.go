package chat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("alice")

	require.NotNil(t, s)
	assert.Equal(t, "alice", s.Name)
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a := NewSession("a")
	b := NewSession("b")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_String(t *testing.T) {
	tests := []struct {
		name     string
		session  *Session
		expected string
	}{
		{name: "named", session: &Session{ID: "1", Name: "bob"}, expected: "bob"},
		{name: "anonymous", session: &Session{ID: "1"}, expected: "1"},
		{name: "nil", session: nil, expected: "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.String())
		})
	}
}
