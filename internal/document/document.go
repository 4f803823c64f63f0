// Package document encodes expression trees as YAML documents.
//
// A document is the text of an expression with its positional args and
// named params:
//
//	text: SELECT ? FROM ? WHERE status = :status AND id IN (?)
//	args:
//	  - {column: id}
//	  - {table: orders}
//	  - [1, 2, 3]
//	params:
//	  status: open
//
// Scalars are literal values, sequences are arrays and single-key
// mappings select the other kinds: column, table, identifier, expr,
// lit, inline, binary, numeric and datetime.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qjebbs/go-sqlq/expr"
	"gopkg.in/yaml.v3"
)

// Document is an expression in YAML form.
type Document struct {
	// Text is the SQL text with "?" and ":name" placeholders.
	Text string `yaml:"text"`

	// Args are the positional values.
	Args []Arg `yaml:"args,omitempty"`

	// Params are the named values, keyed without the leading colon.
	Params map[string]Arg `yaml:"params,omitempty"`
}

// Arg is a value of a document.
type Arg struct {
	Value expr.Value
}

func (a Arg) value() expr.Value {
	if a.Value == nil {
		return expr.Null{}
	}
	return a.Value
}

// MarshalYAML implements yaml.Marshaler.
func (a Arg) MarshalYAML() (any, error) {
	return encodeValue(a.Value)
}

// UnmarshalYAML implements yaml.Unmarshaler. Every arg and param is
// decoded from its node, so a null is a NULL value. Unknown fields are
// rejected.
func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: document must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "text":
			if err := value.Decode(&d.Text); err != nil {
				return err
			}
		case "args":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: args must be a sequence", value.Line)
			}
			for _, c := range value.Content {
				v, err := decodeValue(c)
				if err != nil {
					return err
				}
				d.Args = append(d.Args, Arg{Value: v})
			}
		case "params":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: params must be a mapping", value.Line)
			}
			d.Params = make(map[string]Arg, len(value.Content)/2)
			for j := 0; j+1 < len(value.Content); j += 2 {
				v, err := decodeValue(value.Content[j+1])
				if err != nil {
					return err
				}
				d.Params[value.Content[j].Value] = Arg{Value: v}
			}
		default:
			return fmt.Errorf("line %d: field %s not found in document", key.Line, key.Value)
		}
	}
	return nil
}

// Expression returns the expression described by the document.
func (d *Document) Expression() (*expr.Expression, error) {
	if strings.TrimSpace(d.Text) == "" {
		return nil, errors.New("text is required")
	}
	args := make([]any, 0, len(d.Args))
	for _, a := range d.Args {
		args = append(args, a.value())
	}
	e := expr.New(d.Text, args...)
	for name, a := range d.Params {
		e.Bind(name, a.value())
	}
	return e, nil
}

// FromExpression returns the document of e. References are read now.
func FromExpression(e *expr.Expression) (*Document, error) {
	if err := e.Err(); err != nil {
		return nil, err
	}
	d := &Document{Text: e.Text}
	for i := 0; i < e.NumParams(); i++ {
		v, ok := e.Param(i)
		if !ok {
			return nil, fmt.Errorf("positional value %d is not set", i)
		}
		d.Args = append(d.Args, Arg{Value: v})
	}
	for _, name := range e.Names() {
		v, _ := e.NamedParam(name)
		if d.Params == nil {
			d.Params = make(map[string]Arg)
		}
		d.Params[strings.TrimPrefix(name, ":")] = Arg{Value: v}
	}
	return d, nil
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &d, nil
}

// Load reads a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes d to w.
func Encode(w io.Writer, d *Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(d); err != nil {
		return err
	}
	return encoder.Close()
}
