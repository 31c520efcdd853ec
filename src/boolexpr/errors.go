package boolexpr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrEmptyExpression     = errors.New("empty expression")
)

// InvalidCharacterError is returned when a letter outside A-Z is used as a
// variable.
type InvalidCharacterError struct {
	Char byte
}

// NewInvalidCharacterError creates a new InvalidCharacterError for the given character.
func NewInvalidCharacterError(ch byte) error {
	return &InvalidCharacterError{Char: ch}
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Char)
}

func (e InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// MalformedExpressionError is returned when the input does not follow the
// fully parenthesized grammar. Position is a byte offset into Expression.
type MalformedExpressionError struct {
	Expression string
	Position   int
	Reason     string
}

// NewMalformedExpressionError creates a new MalformedExpressionError.
func NewMalformedExpressionError(expression string, position int, reason string) error {
	return &MalformedExpressionError{
		Expression: expression,
		Position:   position,
		Reason:     reason,
	}
}

func (e MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression at position %d: %s", e.Position, e.Reason)
}

func (e MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}
