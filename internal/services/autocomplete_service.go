package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"mtm/internal/commands"
	"mtm/internal/model"
	"mtm/internal/parser"
)

// AutoCompleteService provides tab completion for MTM input.
// It implements readline.AutoCompleter and is installed in the line editor
// of the interactive shell.
type AutoCompleteService struct {
	initialized bool
	keywords    []string
	groups      func() []string
}

var _ readline.AutoCompleter = (*AutoCompleteService)(nil)

// NewAutoCompleteService creates a new AutoCompleteService instance completing
// the built-in keywords.
func NewAutoCompleteService() *AutoCompleteService {
	return &AutoCompleteService{
		keywords: parser.DefaultTable().Keywords(),
	}
}

// Name returns the service name "autocomplete" for registration.
func (a *AutoCompleteService) Name() string {
	return "autocomplete"
}

// Initialize sets up the AutoCompleteService for operation.
func (a *AutoCompleteService) Initialize() error {
	a.initialized = true
	return nil
}

// SetKeywords replaces the command keywords offered for the first word.
func (a *AutoCompleteService) SetKeywords(keywords []string) {
	a.keywords = append([]string(nil), keywords...)
	sort.Strings(a.keywords)
}

// SetGroupSource sets the function listing group names for group arguments.
func (a *AutoCompleteService) SetGroupSource(groups func() []string) {
	a.groups = groups
}

// Do implements the readline.AutoCompleter interface.
func (a *AutoCompleteService) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if !a.initialized {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	before := string(line[:pos])
	wordStart := strings.LastIndexAny(before, " \t") + 1
	currentWord := before[wordStart:]

	completions := a.getCompletions(strings.Fields(before[:wordStart]))

	var suggestions [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, currentWord) {
			suffix := strings.TrimPrefix(completion, currentWord)
			suggestions = append(suggestions, []rune(suffix+" "))
		}
	}

	return suggestions, len([]rune(currentWord))
}

// getCompletions returns candidates for the word following preceding.
func (a *AutoCompleteService) getCompletions(preceding []string) []string {
	if len(preceding) == 0 {
		return a.keywords
	}

	switch preceding[0] {
	case commands.ThemeWord, commands.ThemeAlias:
		if len(preceding) == 1 {
			return commands.ThemeNames
		}
	case commands.SortWord, commands.SortAlias:
		if len(preceding) == 1 {
			fields := make([]string, len(model.SortFields))
			for i, f := range model.SortFields {
				fields[i] = string(f)
			}
			return fields
		}
	case commands.ViewWord, commands.ViewAlias,
		commands.RemoveWord, commands.RemoveAlias,
		commands.AssignWord, commands.AssignAlias,
		commands.RenameWord, commands.RenameAlias:
		if len(preceding) == 1 {
			return a.groupNames()
		}
	}
	return nil
}

func (a *AutoCompleteService) groupNames() []string {
	if a.groups == nil {
		return nil
	}
	names := a.groups()
	sort.Strings(names)
	return names
}

func init() {
	if err := GlobalRegistry.RegisterService(NewAutoCompleteService()); err != nil {
		panic(fmt.Sprintf("failed to register autocomplete service: %v", err))
	}
}
