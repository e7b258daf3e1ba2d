package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

type historyDB struct {
	ID        string    `db:"id"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

func (h *historyDB) toEntity() entity.HistoryItem {
	return entity.HistoryItem{
		ID:        h.ID,
		URL:       h.URL,
		CreatedAt: h.CreatedAt.UTC(),
	}
}

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) SaveLink(ctx context.Context, item *entity.HistoryItem) error {
	const op = "adapter.repository.postgres.HistoryRepository.SaveLink"
	const query = `INSERT INTO history(id, url, created_at) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.URL, item.CreatedAt); err != nil {
		return storageError(op, "failed to insert into history table", err)
	}

	return nil
}

func (r *HistoryRepository) ListLinks(ctx context.Context, order entity.SortOrder) ([]entity.HistoryItem, error) {
	const op = "adapter.repository.postgres.HistoryRepository.ListLinks"

	q := psql.Select("id", "url", "created_at").From("history")
	if order == entity.SortOldest {
		q = q.OrderBy("created_at ASC", "id ASC")
	} else {
		q = q.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, storageError(op, "failed to build query", err)
	}

	var rows []historyDB
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageError(op, "failed to select from history table", err)
	}

	items := make([]entity.HistoryItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}

	return items, nil
}

func (r *HistoryRepository) RemoveLink(ctx context.Context, id string) error {
	const op = "adapter.repository.postgres.HistoryRepository.RemoveLink"
	const query = `DELETE FROM history WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageError(op, "failed to delete from history table", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageError(op, "failed to get number of affected rows", err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
	}

	return nil
}
