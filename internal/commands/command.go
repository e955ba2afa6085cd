// Package commands provides the command objects built by the parser and executed
// against the address book model.
package commands

import (
	"errors"
	"fmt"

	"mtm/internal/model"
)

// Messages shared by several commands.
const (
	MessageInvalidPersonIndex    = "The person index provided is invalid"
	MessagePersonsListedOverview = "%d persons listed!"
	MessageDuplicatePerson       = "This person already exists in the address book"
	MessageGroupNotFound         = "The group %s does not exist"
	MessageDuplicateGroup        = "The group %s already exists"
)

// ErrInvalidPersonIndex is returned when an index is outside the displayed list.
var ErrInvalidPersonIndex = errors.New(MessageInvalidPersonIndex)

// Command is a parsed user request ready to run against the model.
type Command interface {
	// Name returns the command word the command was registered under.
	Name() string
	// Execute runs the command and returns the feedback for the user.
	Execute(m model.Model) (Result, error)
}

// Result is the outcome of a successful command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string
	// ShowHelp asks the shell to display the command reference.
	ShowHelp bool
	// Exit asks the shell to terminate.
	Exit bool
	// ShowList asks the shell to display the model's filtered person list.
	ShowList bool
	// Selected is the person to display in detail, if any.
	Selected *model.Person
}

// NewResult returns a Result with only feedback set.
func NewResult(format string, args ...interface{}) Result {
	return Result{Feedback: fmt.Sprintf(format, args...)}
}

// personAt resolves a 1-based index against the displayed person list.
func personAt(m model.Model, index int) (model.Person, error) {
	persons := m.FilteredPersons()
	if index < 1 || index > len(persons) {
		return model.Person{}, ErrInvalidPersonIndex
	}
	return persons[index-1], nil
}

// userError converts model errors into user-facing errors.
func userError(err error, name string) error {
	switch {
	case errors.Is(err, model.ErrGroupNotFound):
		return fmt.Errorf(MessageGroupNotFound, name)
	case errors.Is(err, model.ErrDuplicateGroup):
		return fmt.Errorf(MessageDuplicateGroup, name)
	case errors.Is(err, model.ErrDuplicatePerson):
		return errors.New(MessageDuplicatePerson)
	default:
		return err
	}
}
