package compiler

import (
	"strconv"
	"strings"

	"github.com/qjebbs/go-sqlq/expr"
)

// ParseStatement flattens e into a Statement with "?" placeholders only.
//
// Expressions and identifiers bound to placeholders are inlined as SQL
// text, arrays become comma separated lists, and every other value becomes
// a parameter. A placeholder without a value is an *UndefinedParameterError.
func (c *Compiler) ParseStatement(e expr.Expressioner) (*Statement, error) {
	return c.lower(e, BindQuestion)
}

// Statement lowers v into a Statement with the placeholders of the
// compiler's bind style.
//
// In numbered styles, a named placeholder used many times within one
// expression is bound once and every occurrence refers to the same number.
// Positional placeholders always get a fresh number.
func (c *Compiler) Statement(v any) (*Statement, error) {
	return c.lower(v, c.style)
}

// Compile returns v as SQL text with every value quoted as a literal.
// References are read now.
func (c *Compiler) Compile(v any) (string, error) {
	w := &walker{c: c, literal: true}
	if err := w.value(expr.ValueOf(v), "", nil); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

func (c *Compiler) lower(v any, style BindStyle) (*Statement, error) {
	w := &walker{c: c, style: style}
	if err := w.value(expr.ValueOf(v), "", nil); err != nil {
		return nil, err
	}
	return &Statement{Text: w.buf.String(), Params: w.params}, nil
}

// walker lowers a value tree in one pass. Placeholders are emitted while
// walking and never parsed again, so quoted text spliced into the output
// cannot be mistaken for a placeholder.
type walker struct {
	c       *Compiler
	literal bool // quote every value inline
	style   BindStyle

	buf    strings.Builder
	params []expr.Value
	depth  int // nesting of the expression being walked
}

// numbers maps named placeholders of one expression to parameter numbers.
type numbers map[string]int

func (w *walker) expression(e *expr.Expression) error {
	if err := e.Err(); err != nil {
		return err
	}
	if w.depth > 0 && !e.HasParams() {
		// a nested value without values is raw SQL written by the caller
		w.buf.WriteString(e.Text)
		return nil
	}
	w.depth++
	defer func() { w.depth-- }()
	var (
		text       = e.Text
		last       int
		positional int
		scope      = numbers{}
	)
	for _, loc := range w.c.placeholders.FindAllStringIndex(text, -1) {
		w.buf.WriteString(text[last:loc[0]])
		last = loc[1]
		token := text[loc[0]:loc[1]]
		var (
			v    expr.Value
			ok   bool
			name string
		)
		switch {
		case token == "?":
			v, ok = e.Param(positional)
			if !ok {
				return &UndefinedParameterError{Key: strconv.Itoa(positional), Text: text}
			}
			positional++
		case isNamed(token):
			name = token
			v, ok = e.NamedParam(name)
			if !ok {
				return &UndefinedParameterError{Key: name, Text: text}
			}
		default:
			// escapes of the pattern, e.g. "::"
			w.buf.WriteString(token)
			continue
		}
		if err := w.value(v, name, scope); err != nil {
			return err
		}
	}
	w.buf.WriteString(text[last:])
	return nil
}

func (w *walker) value(v expr.Value, name string, scope numbers) error {
	switch v := v.(type) {
	case expr.Expressioner:
		return w.expression(v.Expr())
	case expr.Column:
		w.buf.WriteString(w.c.QuoteColumn(v))
	case expr.Table:
		w.buf.WriteString(w.c.QuoteTable(v))
	case expr.Identifier:
		w.buf.WriteString(w.c.QuoteIdentifier(v))
	case expr.Array:
		for i, el := range v {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			if err := w.value(el, "", nil); err != nil {
				return err
			}
		}
	case expr.Literal:
		return w.param(expr.Unwrap(v), name, scope)
	case expr.NonParameterized:
		s, err := w.c.Quote(v.Value)
		if err != nil {
			return err
		}
		w.buf.WriteString(s)
	case expr.Invalid:
		return unsupported(v)
	default:
		return w.param(v, name, scope)
	}
	return nil
}

// param writes a single parameter: quoted in literal mode,
// a placeholder otherwise.
func (w *walker) param(v expr.Value, name string, scope numbers) error {
	if w.literal {
		s, err := w.c.QuoteLiteral(v)
		if err != nil {
			return err
		}
		w.buf.WriteString(s)
		return nil
	}
	switch v := v.(type) {
	case expr.Expressioner, expr.Identifier, expr.Column, expr.Table, expr.NonParameterized:
		// no native form, inline the text
		s, err := w.c.Quote(v)
		if err != nil {
			return err
		}
		w.buf.WriteString(s)
		return nil
	case expr.Invalid:
		return unsupported(v)
	case *expr.Reference:
		if err := v.Err(); err != nil {
			return unsupported(expr.Invalid{Go: v})
		}
	}
	numbered := name != "" && scope != nil && w.style.Numbered()
	if numbered {
		if n, ok := scope[name]; ok {
			w.buf.WriteString(w.style.Placeholder(n))
			return nil
		}
	}
	w.params = append(w.params, v)
	n := len(w.params)
	if numbered {
		scope[name] = n
	}
	w.buf.WriteString(w.style.Placeholder(n))
	return nil
}

func isNamed(token string) bool {
	return len(token) > 1 && token[0] == ':' && token[1] != ':'
}
