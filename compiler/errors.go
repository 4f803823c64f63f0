package compiler

import (
	"errors"
	"fmt"

	"github.com/qjebbs/go-sqlq/expr"
)

var (
	// ErrUndefinedParameter is returned when a placeholder has no value.
	ErrUndefinedParameter = errors.New("undefined parameter")

	// ErrUnsupportedValue is returned for values without an SQL form.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// UndefinedParameterError reports a placeholder without a value.
type UndefinedParameterError struct {
	// Key is the placeholder, ":name" or the positional index.
	Key string
	// Text is the text of the expression holding the placeholder.
	Text string
}

// Error returns the error string.
func (e *UndefinedParameterError) Error() string {
	return fmt.Sprintf("undefined parameter %s in %q", e.Key, e.Text)
}

// Is reports whether the target error matches UndefinedParameterError.
// This allows errors.Is(err, ErrUndefinedParameter) to return true.
func (e *UndefinedParameterError) Is(err error) bool {
	return err == ErrUndefinedParameter
}

// IsUndefinedParameter returns true if the error is an UndefinedParameterError.
func IsUndefinedParameter(err error) bool {
	if err == nil {
		return false
	}
	var e *UndefinedParameterError
	return errors.As(err, &e) || errors.Is(err, ErrUndefinedParameter)
}

func unsupported(v expr.Invalid) error {
	if r, ok := v.Go.(*expr.Reference); ok {
		return fmt.Errorf("%w: %w", ErrUnsupportedValue, r.Err())
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Error())
}
