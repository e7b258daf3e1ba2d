// Package local implements the repositories as JSON documents in a
// key/value table, one document per key, the layout a browser-local
// store would use.
package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

// Keys of the stored documents.
const (
	keyHistory        = "history"
	keyTemplates      = "templates"
	keyTemplateGroups = "templateGroups"
)

// Store serializes read-modify-write cycles over the kv table.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func storageError(op, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", op, msg, entity.ErrStorage, err)
}

// raw returns the stored document for key, or nil if nothing is stored.
func raw(ctx context.Context, q sqlx.QueryerContext, key string) (json.RawMessage, error) {
	var value string

	err := sqlx.GetContext(ctx, q, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return json.RawMessage(value), nil
}

func put(ctx context.Context, e sqlx.ExecerContext, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = e.ExecContext(ctx,
		`INSERT INTO kv(key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(b),
	)
	return err
}

// update runs fn inside a transaction while holding the store lock.
func (s *Store) update(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
