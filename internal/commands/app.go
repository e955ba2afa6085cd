package commands

import (
	"errors"

	"mtm/internal/model"
)

// Command words, aliases and usage for application commands.
const (
	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program.\n" +
		"Example: " + ExitWord

	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	ThemeWord  = "theme"
	ThemeAlias = "ct"
	ThemeUsage = ThemeWord + ": Changes the colour theme.\n" +
		"Parameters: default|dark|light|plain\n" +
		"Example: " + ThemeWord + " dark"

	KeyWord  = "key"
	KeyAlias = "k"
	KeyUsage = KeyWord + ": Locks or unlocks MTM. While locked only theme, find, list, key, view, exit, help and sort are allowed.\n" +
		"Parameters: KEY\n" +
		"Example: " + KeyWord + " password"

	SetWord  = "set"
	SetAlias = "st"
	SetUsage = SetWord + ": Changes the key used to lock and unlock MTM.\n" +
		"Parameters: OLD_KEY NEW_KEY\n" +
		"Example: " + SetWord + " password s3cret"
)

// Messages for application commands.
const (
	MessageExit        = "Exiting Address Book as requested ..."
	MessageShowHelp    = "Showing help."
	MessageLocked      = "MTM locked!"
	MessageUnlocked    = "MTM unlocked!"
	MessageWrongKey    = "Incorrect key!"
	MessageNoKey       = "No key has been set. Use the " + SetWord + " command to choose one."
	MessageKeyChanged  = "Key changed successfully!"
	MessageThemeChange = "Theme changed to %s"
)

// ThemeNames lists the themes that can be selected.
var ThemeNames = []string{"default", "dark", "light", "plain"}

// ExitCommand terminates the shell.
type ExitCommand struct{}

// Name returns the command word.
func (c ExitCommand) Name() string { return ExitWord }

// Execute asks the shell to exit.
func (c ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

// HelpCommand shows the command reference.
type HelpCommand struct{}

// Name returns the command word.
func (c HelpCommand) Name() string { return HelpWord }

// Execute asks the shell to display help.
func (c HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageShowHelp, ShowHelp: true}, nil
}

// ThemeCommand switches the colour theme.
type ThemeCommand struct {
	Theme string
}

// Name returns the command word.
func (c ThemeCommand) Name() string { return ThemeWord }

// Execute records the chosen theme.
func (c ThemeCommand) Execute(m model.Model) (Result, error) {
	m.SetTheme(c.Theme)
	return NewResult(MessageThemeChange, c.Theme), nil
}

// KeyCommand toggles the lock when the key matches.
type KeyCommand struct {
	Key string
}

// Name returns the command word.
func (c KeyCommand) Name() string { return KeyWord }

// Execute locks or unlocks the application.
func (c KeyCommand) Execute(m model.Model) (Result, error) {
	locked, err := m.ToggleLock(c.Key)
	if err != nil {
		return Result{}, keyError(err)
	}
	if locked {
		return Result{Feedback: MessageLocked}, nil
	}
	return Result{Feedback: MessageUnlocked}, nil
}

// SetCommand replaces the lock key.
type SetCommand struct {
	OldKey string
	NewKey string
}

// Name returns the command word.
func (c SetCommand) Name() string { return SetWord }

// Execute changes the key after checking the old one.
func (c SetCommand) Execute(m model.Model) (Result, error) {
	if err := m.ChangeKey(c.OldKey, c.NewKey); err != nil {
		return Result{}, keyError(err)
	}
	return Result{Feedback: MessageKeyChanged}, nil
}

func keyError(err error) error {
	switch {
	case errors.Is(err, model.ErrWrongKey):
		return errors.New(MessageWrongKey)
	case errors.Is(err, model.ErrNoKey):
		return errors.New(MessageNoKey)
	default:
		return err
	}
}
