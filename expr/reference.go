package expr

import (
	"fmt"
	"reflect"
)

var _ Value = (*Reference)(nil)

// Reference is a late-bound parameter: a handle on a variable that is read
// each time the parameter is used, not when the expression is built.
//
//	var id int
//	e := expr.New("id = ?", expr.Ref(&id))
//	stmt, _ := c.Statement(e)
//	id = 42
//	args, _ := stmt.Args(nil) // [42]
//
// Writes to the variable must be synchronized with the execution by the
// caller.
type Reference struct {
	ptr reflect.Value
	err error
}

func (*Reference) value() {}

// Ref returns a Reference to the variable ptr points to.
func Ref(ptr any) *Reference {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &Reference{err: fmt.Errorf("reference requires a non-nil pointer, got %T", ptr)}
	}
	return &Reference{ptr: rv}
}

// Resolve reads the variable and converts it into a Value.
func (r *Reference) Resolve() Value {
	if r == nil || r.err != nil {
		return Invalid{Go: r}
	}
	return ValueOf(r.ptr.Elem().Interface())
}

// Err returns the error of an invalid reference.
func (r *Reference) Err() error {
	if r == nil {
		return fmt.Errorf("nil reference")
	}
	return r.err
}

// Resolve dereferences v until it is not a *Reference.
func Resolve(v Value) Value {
	for {
		r, ok := v.(*Reference)
		if !ok {
			return v
		}
		v = r.Resolve()
	}
}
