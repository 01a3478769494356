package chatcolor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk YAML layout of a custom palette.
//
//	reset: "&f"
//	colors:
//	  - id: 0
//	    name: BLACK
//	    token: "&0"
//	    rgb: [0, 0, 0]
type paletteFile struct {
	Reset  string      `yaml:"reset"`
	Colors []colorYAML `yaml:"colors"`
}

type colorYAML struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Token string `yaml:"token"`
	RGB   []int  `yaml:"rgb"`
}

// LoadPalette reads a YAML palette from path.
func LoadPalette(path string, options ...Option) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	return ParsePalette(data, options...)
}

// ParsePalette decodes a YAML palette document.
func ParsePalette(data []byte, options ...Option) (*Table, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	entries := make([]Entry, 0, len(f.Colors))
	for _, c := range f.Colors {
		if c.Name == "" {
			return nil, fmt.Errorf("color %d has no name", c.ID)
		}
		if len(c.RGB) != 3 {
			return nil, fmt.Errorf("color %s: rgb needs 3 channels, got %d", c.Name, len(c.RGB))
		}
		var ch [3]uint8
		for i, v := range c.RGB {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("color %s: channel value %d out of range", c.Name, v)
			}
			ch[i] = uint8(v)
		}
		entries = append(entries, Entry{
			ID:    ID(c.ID),
			Name:  c.Name,
			Token: c.Token,
			RGB:   RGB{R: ch[0], G: ch[1], B: ch[2]},
		})
	}

	if f.Reset != "" {
		options = append([]Option{WithReset(f.Reset)}, options...)
	}
	return NewTable(entries, options...)
}
