package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestGetOrCreateTagTxFound(t *testing.T) {
	tx := &scriptedTx{results: []scanResult{
		{values: []any{int64(2)}},
	}}

	id, err := NewPostRepository(nil).GetOrCreateTagTx(context.Background(), tx, "Satranç", "satranc")
	if err != nil {
		t.Fatalf("GetOrCreateTagTx: %v", err)
	}
	if id != 2 {
		t.Errorf("id = %d, want 2", id)
	}
	if len(tx.queries) != 1 {
		t.Errorf("ran %d queries, want the lookup only", len(tx.queries))
	}
}

func TestGetOrCreateTagTxInserts(t *testing.T) {
	tx := &scriptedTx{results: []scanResult{
		{err: pgx.ErrNoRows},
		{values: []any{int64(3)}},
	}}

	id, err := NewPostRepository(nil).GetOrCreateTagTx(context.Background(), tx, "Satranç", "satranc")
	if err != nil {
		t.Fatalf("GetOrCreateTagTx: %v", err)
	}
	if id != 3 {
		t.Errorf("id = %d, want 3", id)
	}
	if len(tx.queries) != 2 || !strings.Contains(tx.queries[1], "INSERT INTO tags") {
		t.Errorf("queries = %q, want lookup then insert", tx.queries)
	}
}

func TestGetOrCreateTagTxRaced(t *testing.T) {
	tx := &scriptedTx{results: []scanResult{
		{err: pgx.ErrNoRows},
		{err: pgx.ErrNoRows},
		{values: []any{int64(6)}},
	}}

	id, err := NewPostRepository(nil).GetOrCreateTagTx(context.Background(), tx, "Satranç", "satranc")
	if err != nil {
		t.Fatalf("GetOrCreateTagTx: %v", err)
	}
	if id != 6 {
		t.Errorf("id = %d, want the concurrent writer's id 6", id)
	}
	if len(tx.queries) != 3 {
		t.Errorf("ran %d queries, want lookup, insert, re-select", len(tx.queries))
	}
}
