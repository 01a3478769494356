package chatcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbEntries() []Entry {
	return []Entry{
		{ID: 0, Name: "RED", RGB: RGB{R: 255}},
		{ID: 1, Name: "GREEN", RGB: RGB{G: 255}},
		{ID: 2, Name: "BLUE", RGB: RGB{B: 255}},
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(rgbEntries())
	require.NoError(t, err)

	assert.Equal(t, ID(0), table.Min())
	assert.Equal(t, ID(2), table.Max())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "GREEN", table.Entry(1).Name)
	assert.Equal(t, Entry{}, table.Entry(3))
	assert.Equal(t, Entry{}, table.Entry(-1))
}

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		errMsg  string
	}{
		{
			name:    "empty",
			entries: nil,
			errMsg:  "no colors",
		},
		{
			name: "gap",
			entries: []Entry{
				{ID: 0, Name: "A"},
				{ID: 2, Name: "B"},
			},
			errMsg: "not contiguous",
		},
		{
			name: "descending",
			entries: []Entry{
				{ID: 1, Name: "A"},
				{ID: 0, Name: "B"},
			},
			errMsg: "not contiguous",
		},
		{
			name: "duplicate name",
			entries: []Entry{
				{ID: 0, Name: "red"},
				{ID: 1, Name: "RED"},
			},
			errMsg: "used by ids 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTable_RandomStaysInRange(t *testing.T) {
	table, err := NewTable(rgbEntries(), WithSeed(7))
	require.NoError(t, err)

	seen := map[ID]bool{}
	for i := 0; i < 300; i++ {
		e := table.Random()
		assert.GreaterOrEqual(t, e.ID, table.Min())
		assert.LessOrEqual(t, e.ID, table.Max())
		seen[e.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestTable_RandomSeeded(t *testing.T) {
	a, err := NewTable(rgbEntries(), WithSeed(42))
	require.NoError(t, err)
	b, err := NewTable(rgbEntries(), WithSeed(42))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Random(), b.Random())
	}
}

func TestTable_Lookup(t *testing.T) {
	table, err := NewTable(rgbEntries())
	require.NoError(t, err)

	e, ok := table.Lookup("blue")
	assert.True(t, ok)
	assert.Equal(t, ID(2), e.ID)

	_, ok = table.Lookup("purple")
	assert.False(t, ok)
}

func TestTable_Reset(t *testing.T) {
	entries := []Entry{
		{ID: 0, Name: "WHITE", Token: "&f"},
		{ID: 1, Name: "RED", Token: "&c"},
	}

	table, err := NewTable(entries)
	require.NoError(t, err)
	assert.Equal(t, "&f", table.Reset())

	table, err = NewTable(entries, WithReset("&r"))
	require.NoError(t, err)
	assert.Equal(t, "&r", table.Reset())
}

func TestTable_CopiesEntries(t *testing.T) {
	entries := rgbEntries()
	table, err := NewTable(entries)
	require.NoError(t, err)

	entries[0].Name = "CHANGED"
	assert.Equal(t, "RED", table.Entry(0).Name)
}

func TestRGB_Hex(t *testing.T) {
	assert.Equal(t, "#ff8000", RGB{R: 255, G: 128}.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
}

func TestDefault(t *testing.T) {
	table := Default()

	assert.Equal(t, ID(1), table.Min())
	assert.Equal(t, ID(16), table.Max())
	assert.Equal(t, "\x01", table.Reset())
	for id := table.Min(); id <= table.Max(); id++ {
		e := table.Entry(id)
		assert.Equal(t, string(rune(id)), e.Token, "token of %s", e.Name)
		assert.NotEmpty(t, e.Name)
	}
}
