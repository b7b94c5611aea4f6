package main

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidForm is wrapped by errors for forms with the wrong shape,
	// such as an if with a single operand or a def without a symbol.
	ErrInvalidForm = errors.New("invalid form")

	// ErrInvalidOperand is wrapped when arithmetic is handed a non-number.
	ErrInvalidOperand = errors.New("invalid operand")
)

// UndefinedVariableError is returned when a symbol is read before any def
// has bound it.
type UndefinedVariableError struct {
	Name Symbol
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// UnknownOperatorError is returned when the head of a form names no special
// form or primitive. Op holds the head exactly as written.
type UnknownOperatorError struct {
	Op Expr
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %s", Print(e.Op))
}

func invalidForm(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidForm, fmt.Sprintf(format, args...))
}
