package ordgo

import (
	"errors"
)

var (
	// ErrTooLarge is returned when a 0-based value reaches the maximum of its
	// backing type. That value is reserved so that every ordinal has a
	// successor and a 1-based form.
	ErrTooLarge = errors.New("value is too big for this ordinal type")

	// ErrZero is returned when 0 is given where a 1-based ordinal is required.
	ErrZero = errors.New("0 is not a valid 1-based ordinal")

	// ErrUnderflow is returned when a subtraction or difference would end up
	// before the first ordinal.
	ErrUnderflow = errors.New("result would precede the first ordinal")

	// ErrSyntax is returned when an ordinal literal does not match the
	// accepted forms. See Parse for the grammar.
	ErrSyntax = errors.New("malformed ordinal literal")
)
