package compiler

import (
	"fmt"
	"strings"
	"time"

	"github.com/qjebbs/go-sqlq/expr"
)

// Statement is SQL text with native placeholders and the ordered values
// of those placeholders.
//
// Parameters are literal values or *expr.Reference, references are read
// by Args, i.e. when the statement is about to be executed.
type Statement struct {
	Text   string
	Params []expr.Value
}

// ValueConverter converts a resolved parameter into a database/sql
// argument.
type ValueConverter func(v expr.Value) (any, error)

// Args resolves the parameters and converts them with conv,
// DriverValue if conv is nil.
//
// It reads late-bound references every time it is called.
func (s *Statement) Args(conv ValueConverter) ([]any, error) {
	if conv == nil {
		conv = DriverValue
	}
	args := make([]any, 0, len(s.Params))
	for i, p := range s.Params {
		v := resolve(p)
		if inv, ok := v.(expr.Invalid); ok {
			return nil, fmt.Errorf("parameter %d: %w", i+1, unsupported(inv))
		}
		a, err := conv(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		args = append(args, a)
	}
	return args, nil
}

// String returns the text followed by the parameters, for debugging.
func (s *Statement) String() string {
	if len(s.Params) == 0 {
		return s.Text
	}
	params := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		params = append(params, fmt.Sprintf("%v", resolve(p)))
	}
	return s.Text + "; [" + strings.Join(params, ", ") + "]"
}

// DriverValue converts a literal value into the value types of
// database/sql/driver. Arrays are not supported, dialects supporting
// array parameters provide their own converter.
func DriverValue(v expr.Value) (any, error) {
	switch v := v.(type) {
	case expr.Null:
		return nil, nil
	case expr.Bool:
		return bool(v), nil
	case expr.Int:
		return int64(v), nil
	case expr.Float:
		return float64(v), nil
	case expr.Numeric:
		if v.Scale >= 0 {
			return v.Value.StringFixed(v.Scale), nil
		}
		return v.Value.String(), nil
	case expr.String:
		return string(v), nil
	case expr.Binary:
		if v == nil {
			return []byte{}, nil
		}
		return []byte(v), nil
	case expr.DateTime:
		return time.Time(v), nil
	}
	return nil, fmt.Errorf("%w: %T as a parameter", ErrUnsupportedValue, v)
}
