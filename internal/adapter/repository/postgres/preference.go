package postgres

import (
	"context"
	"slices"

	"github.com/jmoiron/sqlx"
)

type preferenceDB struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type PreferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Preferences(ctx context.Context) (map[string]string, error) {
	const op = "adapter.repository.postgres.PreferenceRepository.Preferences"
	const query = `SELECT key, value FROM preferences`

	var rows []preferenceDB
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageError(op, "failed to select from preferences table", err)
	}

	values := make(map[string]string, len(rows))
	for _, p := range rows {
		values[p.Key] = p.Value
	}

	return values, nil
}

// SetPreferences upserts all values in a single statement.
func (r *PreferenceRepository) SetPreferences(ctx context.Context, values map[string]string) error {
	const op = "adapter.repository.postgres.PreferenceRepository.SetPreferences"

	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	q := psql.Insert("preferences").Columns("key", "value")
	for _, k := range keys {
		q = q.Values(k, values[k])
	}

	query, args, err := q.Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").ToSql()
	if err != nil {
		return storageError(op, "failed to build query", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageError(op, "failed to upsert into preferences table", err)
	}

	return nil
}
