package chatcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no tags", input: "hello", expected: "hello"},
		{name: "single tag", input: "{red}hi", expected: "\x07hi"},
		{name: "case insensitive", input: "{Green}go{white}!", expected: "\x04go\x01!"},
		{name: "unknown tag", input: "{nope}x", expected: "{nope}x"},
		{name: "not a tag", input: "{1}", expected: "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(table, tt.input))
		})
	}
}
