package local

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

var preferenceKeys = []string{
	entity.KeyHistoryViewMode,
	entity.KeyHistorySortOrder,
	entity.KeyTemplatesViewMode,
	entity.KeyLoggedIn,
}

type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type PreferenceRepository struct {
	store *Store
}

func NewPreferenceRepository(store *Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// Preferences returns the stored values as strings. Booleans are
// formatted with strconv; values of any other JSON type are skipped.
func (r *PreferenceRepository) Preferences(ctx context.Context) (map[string]string, error) {
	const op = "adapter.repository.local.PreferenceRepository.Preferences"

	query, args, err := sqlx.In(`SELECT key, value FROM kv WHERE key IN (?)`, preferenceKeys)
	if err != nil {
		return nil, storageError(op, "failed to build query", err)
	}

	var rows []kvRow
	if err := r.store.db.SelectContext(ctx, &rows, r.store.db.Rebind(query), args...); err != nil {
		return nil, storageError(op, "failed to select preferences", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		var v any
		if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
			continue
		}

		switch v := v.(type) {
		case string:
			values[row.Key] = v
		case bool:
			values[row.Key] = strconv.FormatBool(v)
		}
	}

	return values, nil
}

// SetPreferences writes every value under its own key in one transaction.
// The login flag is stored as a JSON boolean.
func (r *PreferenceRepository) SetPreferences(ctx context.Context, values map[string]string) error {
	const op = "adapter.repository.local.PreferenceRepository.SetPreferences"

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		for key, value := range values {
			var doc any = value
			if key == entity.KeyLoggedIn {
				if b, err := strconv.ParseBool(value); err == nil {
					doc = b
				}
			}

			if err := put(ctx, tx, key, doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageError(op, "failed to set preferences", err)
	}

	return nil
}
