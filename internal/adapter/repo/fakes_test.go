package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type call struct {
	query string
	args  []any
}

// fakeDB satisfies infra.DB. Responses are keyed by the sqlinline constant
// used, so tests pin which statement produced what.
type fakeDB struct {
	rowScan   map[string]func(dest ...any) error
	execErr   map[string]error
	queryRows map[string]*sliceRows
	queryErr  map[string]error

	calls    []call
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err, ok := f.execErr[query]; ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{query: query, args: args})
	if fn, ok := f.rowScan[query]; ok {
		return simpleRow{scan: fn}
	}
	return simpleRow{}
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err, ok := f.queryErr[query]; ok {
		return nil, err
	}
	if rows, ok := f.queryRows[query]; ok {
		return rows, nil
	}
	return &sliceRows{}, nil
}

func (f *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	if f.tx == nil {
		f.tx = &fakeTx{db: f}
	}
	return f.tx, nil
}

func (f *fakeDB) queriesIssued() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.query)
	}
	return out
}

func (f *fakeDB) issued(query string) bool {
	for _, c := range f.calls {
		if c.query == query {
			return true
		}
	}
	return false
}

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// fakeTx embeds pgx.Tx for the methods the repositories never touch and
// funnels statements back into the owning fakeDB.
type fakeTx struct {
	pgx.Tx
	db         *fakeDB
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsBase) Conn() *pgx.Conn { return nil }

func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (rowsBase) RawValues() [][]byte { return nil }

type sliceRows struct {
	rowsBase
	rows [][]any
	idx  int
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("unexpected scan args: got %d, want %d", len(dest), len(row))
	}
	for i, val := range row {
		if err := assign(dest[i], val); err != nil {
			return err
		}
	}
	return nil
}

func (r *sliceRows) Err() error { return nil }

func (r *sliceRows) Close() {}

func assign(dest, val any) error {
	switch d := dest.(type) {
	case *int64:
		v, ok := val.(int64)
		if !ok {
			return fmt.Errorf("cannot assign %T to *int64", val)
		}
		*d = v
	case *float64:
		v, ok := val.(float64)
		if !ok {
			return fmt.Errorf("cannot assign %T to *float64", val)
		}
		*d = v
	case *string:
		v, ok := val.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to *string", val)
		}
		*d = v
	case *time.Time:
		v, ok := val.(time.Time)
		if !ok {
			return fmt.Errorf("cannot assign %T to *time.Time", val)
		}
		*d = v
	case *decimal.Decimal:
		v, ok := val.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("cannot assign %T to *decimal.Decimal", val)
		}
		*d = v
	case *[]byte:
		v, ok := val.([]byte)
		if !ok {
			return fmt.Errorf("cannot assign %T to *[]byte", val)
		}
		*d = v
	default:
		return fmt.Errorf("unsupported scan dest %T", dest)
	}
	return nil
}
