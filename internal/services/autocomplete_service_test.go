package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionStrings(suggestions [][]rune) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = string(s)
	}
	return out
}

func TestAutoCompleteService_Do(t *testing.T) {
	service := NewAutoCompleteService()
	suggestions, offset := service.Do([]rune("li"), 2)
	assert.Nil(t, suggestions)
	assert.Equal(t, 0, offset)

	require.NoError(t, service.Initialize())
	service.SetGroupSource(func() []string { return []string{"friends", "family", "colleagues"} })

	tests := []struct {
		name           string
		line           string
		expected       []string
		expectedOffset int
	}{
		{name: "keyword prefix", line: "his", expected: []string{"tory "}, expectedOffset: 3},
		{name: "several keywords", line: "re", expected: []string{"do ", "mark ", "move ", "name "}, expectedOffset: 2},
		{name: "theme names", line: "theme d", expected: []string{"efault ", "ark "}, expectedOffset: 1},
		{name: "sort fields via alias", line: "so e", expected: []string{"mail "}, expectedOffset: 1},
		{name: "group names", line: "view f", expected: []string{"amily ", "riends "}, expectedOffset: 1},
		{name: "no completion after arguments", line: "view friends x", expected: []string{}, expectedOffset: 1},
		{name: "no completion for index", line: "delete ", expected: []string{}, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := []rune(tt.line)
			suggestions, offset := service.Do(line, len(line))
			assert.Equal(t, tt.expected, completionStrings(suggestions))
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}

func TestAutoCompleteService_SetKeywords(t *testing.T) {
	service := NewAutoCompleteService()
	require.NoError(t, service.Initialize())
	service.SetKeywords([]string{"zeta", "alpha"})

	suggestions, _ := service.Do([]rune(""), 0)
	assert.Equal(t, []string{"alpha ", "zeta "}, completionStrings(suggestions))

	// Cursor beyond the line is clamped.
	suggestions, _ = service.Do([]rune("al"), 10)
	assert.Equal(t, []string{"pha "}, completionStrings(suggestions))
}
