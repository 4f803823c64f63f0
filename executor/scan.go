package executor

import (
	"context"
	"database/sql"
)

// Rows is a query result read into memory.
type Rows struct {
	Columns []string
	Values  [][]any
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Values)
}

func readRows(rows *sql.Rows, wrap func(error) error) (*Rows, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, wrap(err)
	}
	if len(cols) == 0 {
		return nil, nil
	}
	r := &Rows{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, wrap(err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
		}
		r.Values = append(r.Values, values)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return r, nil
}

// Query executes v and scans rows into a slice, fn returns a new item and
// the scan destinations of its fields.
//
// The main difference in behavior from *sql.Rows.Scan() is that
// it will discard extra columns if there are not enough scan destinations.
//
//	users, err := executor.Query(ctx, e, b, func() (*User, []any) {
//		u := &User{}
//		return u, []any{&u.ID, &u.Name}
//	})
func Query[T any](ctx context.Context, e *Executor, v any, fn func() (T, []any)) ([]T, error) {
	rows, err := e.query(ctx, v)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		dest, fields := fn()
		if err := scanRow(rows, fields...); err != nil {
			return nil, e.wrap(err)
		}
		results = append(results, dest)
	}
	if err := rows.Err(); err != nil {
		return nil, e.wrap(err)
	}
	return results, nil
}

// scanRow scans a single row to dest, unlike rows.Scan(), it drops the
// extra columns.
func scanRow(rows *sql.Rows, dest ...any) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	nBlackholes := len(cols) - len(dest)
	bh := &blackhole{}
	for i := 0; i < nBlackholes; i++ {
		dest = append(dest, bh)
	}
	return rows.Scan(dest...)
}

type blackhole struct{}

func (b *blackhole) Scan(_ any) error { return nil }
