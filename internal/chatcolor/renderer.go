package chatcolor

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer turns chat markup into terminal output. Every palette token
// switches the color of the text that follows it; the reset token returns
// to the terminal default.
type Renderer struct {
	palette Palette
	lip     *lipgloss.Renderer
	tokens  []string
	byToken map[string]Entry
}

// NewRenderer creates a renderer for text written to w. The color profile
// is detected from w; pass termenv.Ascii to force plain output.
func NewRenderer(p Palette, w io.Writer, profile ...termenv.Profile) *Renderer {
	lip := lipgloss.NewRenderer(w)
	if len(profile) > 0 {
		lip.SetColorProfile(profile[0])
	}

	r := &Renderer{
		palette: p,
		lip:     lip,
		byToken: make(map[string]Entry),
	}
	for id := p.Min(); id <= p.Max(); id++ {
		e := p.Entry(id)
		if e.Token == "" {
			continue
		}
		if _, dup := r.byToken[e.Token]; !dup {
			r.tokens = append(r.tokens, e.Token)
		}
		r.byToken[e.Token] = e
	}
	if reset := p.Reset(); reset != "" {
		if _, ok := r.byToken[reset]; !ok {
			r.tokens = append(r.tokens, reset)
		}
	}
	// Longest first so multi-byte tokens win over their prefixes.
	sort.SliceStable(r.tokens, func(i, j int) bool {
		return len(r.tokens[i]) > len(r.tokens[j])
	})
	return r
}

// Render converts markup to styled text.
func (r *Renderer) Render(text string) string {
	var out strings.Builder
	for _, seg := range r.split(text) {
		if seg.text == "" {
			continue
		}
		if seg.plain {
			out.WriteString(seg.text)
			continue
		}
		style := r.lip.NewStyle().Foreground(lipgloss.Color(seg.color.Hex()))
		out.WriteString(style.Render(seg.text))
	}
	return out.String()
}

// Plain strips all palette tokens from text.
func (r *Renderer) Plain(text string) string {
	var out strings.Builder
	for _, seg := range r.split(text) {
		out.WriteString(seg.text)
	}
	return out.String()
}

type segment struct {
	text  string
	color RGB
	plain bool
}

func (r *Renderer) split(text string) []segment {
	var (
		segs []segment
		cur  = segment{plain: true}
		buf  strings.Builder
	)
	for i := 0; i < len(text); {
		tok, ok := r.tokenAt(text[i:])
		if !ok {
			buf.WriteByte(text[i])
			i++
			continue
		}
		cur.text = buf.String()
		segs = append(segs, cur)
		buf.Reset()

		if tok == r.palette.Reset() {
			cur = segment{plain: true}
		} else {
			cur = segment{color: r.byToken[tok].RGB}
		}
		i += len(tok)
	}
	cur.text = buf.String()
	return append(segs, cur)
}

func (r *Renderer) tokenAt(s string) (string, bool) {
	for _, tok := range r.tokens {
		if strings.HasPrefix(s, tok) {
			return tok, true
		}
	}
	return "", false
}
