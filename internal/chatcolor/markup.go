package chatcolor

import "regexp"

var tagPattern = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// Expand replaces {name} tags in text with the matching palette tokens.
// Tag names are matched case-insensitively; unknown tags are left untouched.
func Expand(p *Table, text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		name := tag[1 : len(tag)-1]
		if e, ok := p.Lookup(name); ok {
			return e.Token
		}
		return tag
	})
}
