package commands

import (
	"errors"
	"strings"

	"mtm/internal/model"
)

// Command words, aliases and usage for history commands.
const (
	ClearWord  = "clear"
	ClearAlias = "c"
	ClearUsage = ClearWord + ": Clears all entries from the address book.\n" +
		"Example: " + ClearWord

	HistoryWord  = "history"
	HistoryAlias = "h"
	HistoryUsage = HistoryWord + ": Lists all the commands that you have entered in reverse chronological order.\n" +
		"Example: " + HistoryWord

	UndoWord  = "undo"
	UndoAlias = "u"
	UndoUsage = UndoWord + ": Restores the address book to the state before the previous change.\n" +
		"Example: " + UndoWord

	RedoWord  = "redo"
	RedoAlias = "r"
	RedoUsage = RedoWord + ": Reverses the most recent undo.\n" +
		"Example: " + RedoWord
)

// Messages for history commands.
const (
	MessageNoHistory   = "You have not yet entered any commands."
	MessageUndoFailure = "No more commands to undo!"
	MessageRedoFailure = "No more commands to redo!"
)

// ClearCommand empties the address book.
type ClearCommand struct{}

// Name returns the command word.
func (c ClearCommand) Name() string { return ClearWord }

// Execute resets the address book.
func (c ClearCommand) Execute(m model.Model) (Result, error) {
	m.ResetData(model.NewAddressBook())
	m.Commit()
	return Result{Feedback: "Address book has been cleared!"}, nil
}

// HistoryCommand lists previously entered input, most recent first.
type HistoryCommand struct{}

// Name returns the command word.
func (c HistoryCommand) Name() string { return HistoryWord }

// Execute formats the input history.
func (c HistoryCommand) Execute(m model.Model) (Result, error) {
	history := m.History()
	if len(history) == 0 {
		return Result{Feedback: MessageNoHistory}, nil
	}
	reversed := make([]string, len(history))
	for i, line := range history {
		reversed[len(history)-1-i] = line
	}
	return NewResult("Entered commands (from most recent to earliest):\n%s", strings.Join(reversed, "\n")), nil
}

// UndoCommand restores the previous address book state.
type UndoCommand struct{}

// Name returns the command word.
func (c UndoCommand) Name() string { return UndoWord }

// Execute undoes the last committed change.
func (c UndoCommand) Execute(m model.Model) (Result, error) {
	if err := m.Undo(); err != nil {
		if errors.Is(err, model.ErrNoUndo) {
			return Result{}, errors.New(MessageUndoFailure)
		}
		return Result{}, err
	}
	return Result{Feedback: "Undo success!", ShowList: true}, nil
}

// RedoCommand reapplies the last undone change.
type RedoCommand struct{}

// Name returns the command word.
func (c RedoCommand) Name() string { return RedoWord }

// Execute redoes the last undone change.
func (c RedoCommand) Execute(m model.Model) (Result, error) {
	if err := m.Redo(); err != nil {
		if errors.Is(err, model.ErrNoRedo) {
			return Result{}, errors.New(MessageRedoFailure)
		}
		return Result{}, err
	}
	return Result{Feedback: "Redo success!", ShowList: true}, nil
}
