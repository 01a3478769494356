package testutils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"colorsay/internal/chatcolor"
)

// RGBPalette returns the three color palette {RED=0, GREEN=1, BLUE=2} with
// empty tokens, so rendered lines carry only the plain names.
func RGBPalette(t *testing.T) *chatcolor.Table {
	t.Helper()
	return SizedPalette(t, 3)
}

// SizedPalette returns a palette of k colors starting at ordinal 0. The
// first three are RED, GREEN and BLUE; the rest are named C<id>. Tokens are
// empty and Random is seeded.
func SizedPalette(t *testing.T, k int) *chatcolor.Table {
	t.Helper()

	base := []chatcolor.Entry{
		{ID: 0, Name: "RED", RGB: chatcolor.RGB{R: 255}},
		{ID: 1, Name: "GREEN", RGB: chatcolor.RGB{G: 255}},
		{ID: 2, Name: "BLUE", RGB: chatcolor.RGB{B: 255}},
	}

	entries := make([]chatcolor.Entry, 0, k)
	for i := 0; i < k; i++ {
		if i < len(base) {
			entries = append(entries, base[i])
			continue
		}
		entries = append(entries, chatcolor.Entry{
			ID:   chatcolor.ID(i),
			Name: "C" + strconv.Itoa(i),
			RGB:  chatcolor.RGB{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)},
		})
	}

	table, err := chatcolor.NewTable(entries, chatcolor.WithSeed(1))
	require.NoError(t, err)
	return table
}
