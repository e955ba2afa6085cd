package parser

import (
	"errors"
	"fmt"

	"mtm/internal/commands"
)

// Error kinds. Every *ParseError wraps exactly one of them, so callers can use errors.Is.
var (
	// ErrInvalidFormat means the input or its arguments do not have the expected shape.
	ErrInvalidFormat = errors.New("invalid command format")
	// ErrRestricted means a restricted command was requested while locked.
	ErrRestricted = errors.New("command not allowed while locked")
	// ErrUnknownCommand means the keyword matches no command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidValue means an argument was well placed but its value was rejected.
	ErrInvalidValue = errors.New("invalid value")
)

// User-facing messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageRestricted           = "Not allowed! Please unlock MTM before execution.\n" + commands.KeyUsage
)

// ParseError is returned for every parse failure. Message is what the user sees.
type ParseError struct {
	Kind    error
	Message string
}

// Error returns the user-facing message.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// invalidFormat builds an ErrInvalidFormat error showing usage.
func invalidFormat(usage string) error {
	return &ParseError{Kind: ErrInvalidFormat, Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// invalidValue builds an ErrInvalidValue error with a constraint message.
func invalidValue(message string) error {
	return &ParseError{Kind: ErrInvalidValue, Message: message}
}

func restricted() error {
	return &ParseError{Kind: ErrRestricted, Message: MessageRestricted}
}

func unknownCommand() error {
	return &ParseError{Kind: ErrUnknownCommand, Message: MessageUnknownCommand}
}
