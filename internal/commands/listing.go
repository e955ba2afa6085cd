package commands

import (
	"strings"

	"mtm/internal/model"
)

// Command words, aliases and usage for listing commands.
const (
	ListWord  = "list"
	ListAlias = "l"
	ListUsage = ListWord + ": Lists all persons in the address book.\n" +
		"Example: " + ListWord

	FindWord  = "find"
	FindAlias = "f"
	FindUsage = FindWord + ": Finds all persons whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"

	SortWord  = "sort"
	SortAlias = "so"
	SortUsage = SortWord + ": Sorts the displayed persons by the given field.\n" +
		"Parameters: name|phone|email|address\n" +
		"Example: " + SortWord + " name"
)

// ListCommand shows every person.
type ListCommand struct{}

// Name returns the command word.
func (c ListCommand) Name() string { return ListWord }

// Execute clears the filter.
func (c ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(model.ShowAllPersons)
	return Result{Feedback: "Listed all persons", ShowList: true}, nil
}

// FindCommand shows persons whose name contains any keyword as a whole word.
type FindCommand struct {
	Keywords []string
}

// Name returns the command word.
func (c FindCommand) Name() string { return FindWord }

// Execute filters the displayed list by name keywords.
func (c FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(NameContainsKeywords(c.Keywords))
	res := NewResult(MessagePersonsListedOverview, len(m.FilteredPersons()))
	res.ShowList = true
	return res, nil
}

// NameContainsKeywords matches persons having any keyword as a word of their name, ignoring case.
func NameContainsKeywords(keywords []string) model.PersonPredicate {
	return func(p model.Person) bool {
		words := strings.Fields(p.Name)
		for _, k := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, k) {
					return true
				}
			}
		}
		return false
	}
}

// SortCommand orders the displayed list.
type SortCommand struct {
	Field model.SortField
}

// Name returns the command word.
func (c SortCommand) Name() string { return SortWord }

// Execute sorts the displayed list by Field.
func (c SortCommand) Execute(m model.Model) (Result, error) {
	m.SortPersons(c.Field)
	res := NewResult("Sorted persons by %s", c.Field)
	res.ShowList = true
	return res, nil
}
