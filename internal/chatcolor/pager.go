package chatcolor

import "strings"

// Pager groups palette fragments into chat lines of two entries each.
//
// Fragments are added in ascending ordinal order starting at the palette
// minimum. The pending line is flushed after every entry whose offset from
// the minimum is odd, so interior lines always hold exactly two entries.
// Last appends the terminating entry and flushes whatever is pending, which
// leaves the final line with one entry (even offset) or two (odd offset).
type Pager struct {
	min   ID
	line  strings.Builder
	flush func(line string)
}

// NewPager returns a pager for a palette starting at min. flush receives
// each completed line.
func NewPager(min ID, flush func(line string)) *Pager {
	return &Pager{min: min, flush: flush}
}

// Add appends the fragment of entry id and flushes after every second entry.
func (p *Pager) Add(id ID, fragment string) {
	p.line.WriteString(fragment)
	if (id-p.min)%2 == 1 {
		p.Flush()
	}
}

// Last appends the terminating fragment and flushes the final line.
func (p *Pager) Last(fragment string) {
	p.line.WriteString(fragment)
	p.Flush()
}

// Flush emits the pending line, if any, and starts a new one.
func (p *Pager) Flush() {
	if p.line.Len() == 0 {
		return
	}
	p.flush(p.line.String())
	p.line.Reset()
}
