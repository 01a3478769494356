package chatcolor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// page drives a pager over [min, min+k-1] the way the palette listing does.
func page(min ID, k int) []string {
	var lines []string
	p := NewPager(min, func(line string) {
		lines = append(lines, line)
	})
	max := min + ID(k) - 1
	for id := min; id < max; id++ {
		p.Add(id, fmt.Sprintf("%d,", id))
	}
	p.Last(fmt.Sprintf("%d", max))
	return lines
}

func TestPager_Grouping(t *testing.T) {
	tests := []struct {
		name     string
		min      ID
		k        int
		expected []string
	}{
		{name: "single", min: 0, k: 1, expected: []string{"0"}},
		{name: "pair", min: 0, k: 2, expected: []string{"0,1"}},
		{name: "three", min: 0, k: 3, expected: []string{"0,1,", "2"}},
		{name: "four", min: 0, k: 4, expected: []string{"0,1,", "2,3"}},
		{name: "five", min: 0, k: 5, expected: []string{"0,1,", "2,3,", "4"}},
		{name: "offset min", min: 5, k: 3, expected: []string{"5,6,", "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, page(tt.min, tt.k))
		})
	}
}

func TestPager_LineCountIsHalfRoundedUp(t *testing.T) {
	for k := 1; k <= 32; k++ {
		assert.Len(t, page(1, k), (k+1)/2, "k=%d", k)
	}
}

func TestPager_HoldsLineUntilPairComplete(t *testing.T) {
	var lines []string
	p := NewPager(0, func(line string) { lines = append(lines, line) })

	p.Add(0, "a")
	assert.Empty(t, lines)

	p.Add(1, "b")
	assert.Equal(t, []string{"ab"}, lines)
}

func TestPager_FlushEmptyIsNoop(t *testing.T) {
	calls := 0
	p := NewPager(0, func(string) { calls++ })
	p.Flush()
	assert.Equal(t, 0, calls)
}
