package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/commands"
	"mtm/internal/parser"
)

func TestHelpService_GetAllCommands(t *testing.T) {
	service := NewHelpService()
	_, err := service.GetAllCommands()
	assert.ErrorContains(t, err, "not initialized")

	require.NoError(t, service.Initialize())
	all, err := service.GetAllCommands()
	require.NoError(t, err)
	require.Len(t, all, 23)
	assert.Equal(t, "add", all[0].Word)
	assert.Equal(t, "view", all[len(all)-1].Word)
}

func TestHelpService_GetCommand(t *testing.T) {
	service := NewHelpService()
	require.NoError(t, service.Initialize())

	d, err := service.GetCommand("rmv")
	require.NoError(t, err)
	assert.Equal(t, commands.RemoveWord, d.Word)

	_, err = service.GetCommand("nope")
	assert.EqualError(t, err, "command 'nope' not found")
}

func TestHelpService_Markdown(t *testing.T) {
	service := NewHelpService()
	require.NoError(t, service.Initialize())

	md, err := service.Markdown()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# MTM command reference"))
	assert.Contains(t, md, "| `delete` | `d` | unlocked |")
	assert.Contains(t, md, "| `list` | `l` | *always* |")
	assert.Contains(t, md, "| `exit` | `-` | *always* |")
	assert.Contains(t, md, "\n## sort\n")
}

func TestHelpService_CustomTable(t *testing.T) {
	service := NewHelpService()
	require.NoError(t, service.Initialize())
	service.SetTable(parser.MustTable(parser.Descriptor{
		Word:  "ping",
		Tier:  parser.TierUnrestricted,
		Usage: "ping: Replies.",
		Parse: func(string) (commands.Command, error) { return commands.ListCommand{}, nil },
	}))

	md, err := service.Markdown()
	require.NoError(t, err)
	assert.Contains(t, md, "## ping")
	assert.Contains(t, md, "ping: Replies.")
	assert.NotContains(t, md, "## add")
}
