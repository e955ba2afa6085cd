package services

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/model"
)

func plainRenderSetup(t *testing.T) (*RenderService, *Theme) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	service := NewRenderService()
	require.NoError(t, service.Initialize())
	return service, plainTheme(PlainThemeName)
}

func TestRenderService_RenderPersons(t *testing.T) {
	service, theme := plainRenderSetup(t)

	alex := model.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30", []string{"friends", "gym"})
	bernice := model.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "Blk 31", nil)
	bernice.Private = true

	out := service.RenderPersons([]model.Person{alex, bernice}, theme)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Alex Yeoh")
	assert.Contains(t, out, "87438807")
	assert.Contains(t, out, "friends, gym")
	assert.Contains(t, out, "Bernice Yu")
	assert.NotContains(t, out, "99272758")
	assert.NotContains(t, out, "berniceyu@example.com")
	assert.Equal(t, 3, strings.Count(out, PrivateMask))

	lines := strings.Split(out, "\n")
	var indexed []string
	for _, line := range lines {
		if strings.Contains(line, "Yeoh") || strings.Contains(line, "Yu") {
			indexed = append(indexed, strings.Fields(strings.Trim(line, "│| "))[0])
		}
	}
	assert.Equal(t, []string{"1", "2"}, indexed)
}

func TestRenderService_RenderPersonsEmpty(t *testing.T) {
	service, theme := plainRenderSetup(t)
	assert.Equal(t, "No persons to display.", service.RenderPersons(nil, theme))
}

func TestRenderService_TruncatesLongCells(t *testing.T) {
	service, theme := plainRenderSetup(t)
	service.SetMaxCellWidth(10)
	service.SetMaxCellWidth(2)

	p := model.NewPerson("Alex", "123", "a@b", strings.Repeat("x", 50), nil)
	out := service.RenderPersons([]model.Person{p}, theme)
	assert.Contains(t, out, strings.Repeat("x", 9)+"…")
	assert.NotContains(t, out, strings.Repeat("x", 10))
}

func TestRenderService_RenderPerson(t *testing.T) {
	service, theme := plainRenderSetup(t)

	p := model.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30", []string{"friends"})
	p.Remark = "Likes coffee"

	out := ansi.Strip(service.RenderPerson(p, theme))
	assert.Contains(t, out, "Alex Yeoh")
	assert.Contains(t, out, "Phone: 87438807")
	assert.Contains(t, out, "Tags: friends")
	assert.Contains(t, out, "Remark: Likes coffee")

	p.Private = true
	out = ansi.Strip(service.RenderPerson(p, theme))
	assert.Contains(t, out, "Email: "+PrivateMask)
	assert.NotContains(t, out, "alexyeoh@example.com")
}

func TestRenderService_Messages(t *testing.T) {
	service, theme := plainRenderSetup(t)

	assert.Equal(t, "done", service.RenderFeedback("done", theme))
	assert.Equal(t, "oops", service.RenderError("oops", theme))
	assert.Equal(t, "Did you mean: list, find?", service.RenderSuggestion([]string{"list", "find"}, theme))
	assert.Empty(t, service.RenderSuggestion(nil, theme))

	out := service.RenderList("Keywords", []string{"list", "find"}, theme)
	assert.Contains(t, out, "Keywords")
	assert.Contains(t, out, "list")
	assert.Equal(t, "Nothing", service.RenderList("Nothing", nil, theme))
}
