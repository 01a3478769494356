// Package chatcolor provides the chat color palette: an ordered, contiguous
// set of colors addressable by ordinal, the markup tokens that switch chat
// text to each color, and helpers to expand, render and paginate them.
package chatcolor

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// ID is the ordinal of a palette color.
type ID int

// RGB is an 8-bit per channel color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color in #rrggbb notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Entry is a single palette color.
type Entry struct {
	ID    ID
	Name  string
	Token string
	RGB   RGB
}

// Palette is a contiguous, totally ordered color domain [Min, Max].
type Palette interface {
	Min() ID
	Max() ID
	// Entry returns the color with the given ordinal. Ordinals outside
	// [Min, Max] yield the zero Entry.
	Entry(id ID) Entry
	// Random picks one entry uniformly.
	Random() Entry
	// Reset is the token that switches chat text back to the default color.
	Reset() string
}

// Option configures a Table.
type Option func(*Table)

// WithSeed makes Random deterministic.
func WithSeed(seed uint64) Option {
	return func(t *Table) {
		t.rnd = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithReset overrides the reset token. By default the token of the first
// entry is used.
func WithReset(token string) Option {
	return func(t *Table) {
		t.reset = token
	}
}

// Table is a Palette backed by a slice of entries.
type Table struct {
	entries []Entry
	reset   string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTable builds a palette from entries, which must be non-empty and carry
// consecutive ordinals in ascending order.
func NewTable(entries []Entry, options ...Option) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}

	seen := make(map[string]ID, len(entries))
	for i, e := range entries {
		if want := entries[0].ID + ID(i); e.ID != want {
			return nil, fmt.Errorf("palette is not contiguous: expected id %d at position %d, got %d", want, i, e.ID)
		}
		key := strings.ToLower(e.Name)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("color name %q used by ids %d and %d", e.Name, prev, e.ID)
		}
		seen[key] = e.ID
	}

	t := &Table{
		entries: append([]Entry(nil), entries...),
		reset:   entries[0].Token,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range options {
		opt(t)
	}
	return t, nil
}

// Min returns the lowest ordinal.
func (t *Table) Min() ID {
	return t.entries[0].ID
}

// Max returns the highest ordinal.
func (t *Table) Max() ID {
	return t.entries[len(t.entries)-1].ID
}

// Len returns the number of colors.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the color with ordinal id.
func (t *Table) Entry(id ID) Entry {
	if id < t.Min() || id > t.Max() {
		return Entry{}
	}
	return t.entries[id-t.Min()]
}

// Random returns a uniformly chosen color.
func (t *Table) Random() Entry {
	t.mu.Lock()
	i := t.rnd.IntN(len(t.entries))
	t.mu.Unlock()
	return t.entries[i]
}

// Reset returns the default color token.
func (t *Table) Reset() string {
	return t.reset
}

// Lookup finds a color by name, ignoring case.
func (t *Table) Lookup(name string) (Entry, bool) {
	for _, e := range t.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}
