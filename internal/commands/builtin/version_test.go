package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorsay/internal/chatcolor"
	"colorsay/internal/commands"
	"colorsay/internal/testutils"
)

func TestVersionCommand_Metadata(t *testing.T) {
	cmd := &VersionCommand{}
	assert.Equal(t, "version", cmd.Name())
	assert.Equal(t, "version", cmd.Usage())
	assert.Equal(t, "Prints the version of this plugin", cmd.Description())
	assert.Equal(t, "Prints the version of this plugin", cmd.Help())
}

func TestVersionCommand_Invoke(t *testing.T) {
	host := testutils.NewRecordingHost()
	palette := testutils.RGBPalette(t)
	cmd := NewVersionCommand(host, palette, "ColorSay", "1.2.0")
	target := testutils.NewTestSession("alice")

	result := cmd.Invoke(target, "ignored", []string{"version", "ignored"})

	assert.Equal(t, commands.Stop, result)
	assert.Equal(t, []string{"Plugin version 1.2.0"}, host.PrintedTo(target))
	assert.Equal(t, []string{"[ColorSay] Plugin version 1.2.0"}, host.Broadcast())
}

func TestVersionCommand_TagUsesPaletteColor(t *testing.T) {
	host := testutils.NewRecordingHost()
	cmd := NewVersionCommand(host, chatcolor.Default(chatcolor.WithSeed(3)), "ColorSay", "1.2.0")

	cmd.Invoke(testutils.NewTestSession("alice"), "", []string{"version"})

	broadcast := host.Broadcast()
	require.Len(t, broadcast, 1)
	line := broadcast[0]
	require.True(t, len(line) > 2)
	token := line[1:2]
	assert.GreaterOrEqual(t, token[0], byte(0x01))
	assert.LessOrEqual(t, token[0], byte(0x10))
	assert.Equal(t, "["+token+"ColorSay\x01] Plugin version 1.2.0", line)
}
