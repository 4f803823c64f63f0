package document

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/qjebbs/go-sqlq/expr"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// keys of the mapping forms
const (
	keyColumn     = "column"
	keyTable      = "table"
	keyIdentifier = "identifier"
	keyExpr       = "expr"
	keyLit        = "lit"
	keyInline     = "inline"
	keyBinary     = "binary"
	keyNumeric    = "numeric"
	keyScale      = "scale"
	keyDateTime   = "datetime"
)

func decodeValue(n *yaml.Node) (expr.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeValue(n.Alias)
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.SequenceNode:
		arr := make(expr.Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return decodeMapping(n)
	}
	return nil, fmt.Errorf("line %d: unexpected yaml node", n.Line)
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func decodeScalar(n *yaml.Node) (expr.Value, error) {
	if isNull(n) {
		return expr.Null{}, nil
	}
	if n.ShortTag() == "!!timestamp" {
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, err
		}
		return expr.DateTime(t), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return checked(n, expr.ValueOf(v))
}

func decodeMapping(n *yaml.Node) (expr.Value, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = n.Content[i+1]
	}
	str := func(key string) (string, error) {
		var s string
		if err := fields[key].Decode(&s); err != nil {
			return "", fmt.Errorf("line %d: %s: %w", n.Line, key, err)
		}
		return s, nil
	}
	switch {
	case fields[keyColumn] != nil:
		name, err := str(keyColumn)
		if err != nil {
			return nil, err
		}
		if fields[keyIdentifier] == nil {
			return expr.NewColumn(name), nil
		}
		ns, err := str(keyIdentifier)
		if err != nil {
			return nil, err
		}
		return expr.NewIdentifier(ns).Column(name), nil
	case fields[keyTable] != nil:
		name, err := str(keyTable)
		if err != nil {
			return nil, err
		}
		return expr.NewTable(name), nil
	case fields[keyIdentifier] != nil:
		name, err := str(keyIdentifier)
		if err != nil {
			return nil, err
		}
		return expr.NewIdentifier(name), nil
	case fields[keyExpr] != nil:
		var d Document
		if err := fields[keyExpr].Decode(&d); err != nil {
			return nil, err
		}
		return d.Expression()
	case fields[keyLit] != nil:
		v, err := decodeValue(fields[keyLit])
		if err != nil {
			return nil, err
		}
		return expr.Lit(v), nil
	case fields[keyInline] != nil:
		v, err := decodeValue(fields[keyInline])
		if err != nil {
			return nil, err
		}
		return expr.Inline(v), nil
	case fields[keyBinary] != nil:
		s, err := str(keyBinary)
		if err != nil {
			return nil, err
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: binary: %w", n.Line, err)
		}
		return expr.Binary(b), nil
	case fields[keyNumeric] != nil:
		s, err := str(keyNumeric)
		if err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: numeric: %w", n.Line, err)
		}
		scale := expr.DefaultScale
		if fields[keyScale] != nil {
			if err := fields[keyScale].Decode(&scale); err != nil {
				return nil, fmt.Errorf("line %d: scale: %w", n.Line, err)
			}
		}
		return expr.NewNumeric(d, scale), nil
	case fields[keyDateTime] != nil:
		s, err := str(keyDateTime)
		if err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, fmt.Errorf("line %d: datetime: %w", n.Line, err)
		}
		return expr.DateTime(t), nil
	}
	return nil, fmt.Errorf("line %d: unknown value form", n.Line)
}

func checked(n *yaml.Node, v expr.Value) (expr.Value, error) {
	if inv, ok := v.(expr.Invalid); ok {
		return nil, fmt.Errorf("line %d: %w", n.Line, inv)
	}
	return v, nil
}

func encodeValue(v expr.Value) (any, error) {
	switch v := v.(type) {
	case nil, expr.Null:
		return nil, nil
	case expr.Bool:
		return bool(v), nil
	case expr.Int:
		return int64(v), nil
	case expr.Float:
		return float64(v), nil
	case expr.String:
		return string(v), nil
	case expr.Numeric:
		m := map[string]any{keyNumeric: v.Value.String()}
		if v.Scale >= 0 {
			m[keyScale] = v.Scale
		}
		return m, nil
	case expr.Binary:
		return map[string]any{keyBinary: hex.EncodeToString(v)}, nil
	case expr.DateTime:
		return map[string]any{keyDateTime: time.Time(v).Format(time.RFC3339Nano)}, nil
	case expr.Array:
		r := make([]any, 0, len(v))
		for _, el := range v {
			e, err := encodeValue(el)
			if err != nil {
				return nil, err
			}
			r = append(r, e)
		}
		return r, nil
	case expr.Column:
		if ns, ok := v.Namespace.(expr.Identifier); ok {
			return map[string]any{keyColumn: v.Name, keyIdentifier: ns.String()}, nil
		}
		return map[string]any{keyColumn: v.String()}, nil
	case expr.Table:
		return map[string]any{keyTable: v.String()}, nil
	case expr.Identifier:
		return map[string]any{keyIdentifier: v.String()}, nil
	case expr.Literal:
		inner, err := encodeValue(v.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{keyLit: inner}, nil
	case expr.NonParameterized:
		inner, err := encodeValue(v.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{keyInline: inner}, nil
	case *expr.Reference:
		return encodeValue(v.Resolve())
	case expr.Expressioner:
		d, err := FromExpression(v.Expr())
		if err != nil {
			return nil, err
		}
		return map[string]any{keyExpr: d}, nil
	case expr.Invalid:
		return nil, v
	}
	return nil, fmt.Errorf("cannot encode %T", v)
}
