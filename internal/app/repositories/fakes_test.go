package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
)

// scanResult plays one pgx.Row. Either err is returned from Scan, or the
// values are copied into the scan destinations in order.
type scanResult struct {
	err    error
	values []any
}

func (r scanResult) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan got %d destinations, scripted %d values", len(dest), len(r.values))
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

// scriptedTx satisfies pgx.Tx for the single-row resolver queries. Every
// QueryRow call records its SQL and consumes the next scripted result;
// any other method panics through the embedded nil interface.
type scriptedTx struct {
	pgx.Tx
	results []scanResult
	queries []string
}

func (t *scriptedTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	t.queries = append(t.queries, sql)
	if len(t.results) == 0 {
		return scanResult{err: pgx.ErrNoRows}
	}
	next := t.results[0]
	t.results = t.results[1:]
	return next
}
