package local

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

type historyRecord struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	CreatedAt json.RawMessage `json:"createdAt"`
	// Date is the key older records stored their timestamp under.
	Date json.RawMessage `json:"date"`
}

type storedHistoryItem struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

// decodeHistory keeps every record it can make sense of and drops the rest.
func decodeHistory(doc json.RawMessage) []entity.HistoryItem {
	var records []json.RawMessage
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil
	}

	items := make([]entity.HistoryItem, 0, len(records))
	for _, b := range records {
		var rec historyRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			continue
		}
		if rec.ID == "" || rec.URL == "" {
			continue
		}

		ts, ok := parseTimestamp(rec.CreatedAt)
		if !ok {
			ts, ok = parseTimestamp(rec.Date)
		}
		if !ok {
			continue
		}

		items = append(items, entity.HistoryItem{ID: rec.ID, URL: rec.URL, CreatedAt: ts})
	}

	return items
}

func encodeHistory(items []entity.HistoryItem) []storedHistoryItem {
	out := make([]storedHistoryItem, 0, len(items))
	for _, item := range items {
		out = append(out, storedHistoryItem{
			ID:        item.ID,
			URL:       item.URL,
			CreatedAt: formatTimestamp(item.CreatedAt),
		})
	}
	return out
}

func loadHistory(ctx context.Context, q sqlx.QueryerContext) ([]entity.HistoryItem, error) {
	doc, err := raw(ctx, q, keyHistory)
	if err != nil || doc == nil {
		return nil, err
	}
	return decodeHistory(doc), nil
}

func sortHistory(items []entity.HistoryItem, order entity.SortOrder) {
	slices.SortStableFunc(items, func(a, b entity.HistoryItem) int {
		c := a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if order == entity.SortOldest {
			return c
		}
		return -c
	})
}

type HistoryRepository struct {
	store *Store
}

func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

func (r *HistoryRepository) SaveLink(ctx context.Context, item *entity.HistoryItem) error {
	const op = "adapter.repository.local.HistoryRepository.SaveLink"

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		items, err := loadHistory(ctx, tx)
		if err != nil {
			return err
		}

		items = append([]entity.HistoryItem{*item}, items...)
		return put(ctx, tx, keyHistory, encodeHistory(items))
	})
	if err != nil {
		return storageError(op, "failed to save history", err)
	}

	return nil
}

func (r *HistoryRepository) ListLinks(ctx context.Context, order entity.SortOrder) ([]entity.HistoryItem, error) {
	const op = "adapter.repository.local.HistoryRepository.ListLinks"

	items, err := loadHistory(ctx, r.store.db)
	if err != nil {
		return nil, storageError(op, "failed to load history", err)
	}

	if items == nil {
		items = []entity.HistoryItem{}
	}
	sortHistory(items, order)

	return items, nil
}

func (r *HistoryRepository) RemoveLink(ctx context.Context, id string) error {
	const op = "adapter.repository.local.HistoryRepository.RemoveLink"

	var found bool

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		items, err := loadHistory(ctx, tx)
		if err != nil {
			return err
		}

		n := len(items)
		items = slices.DeleteFunc(items, func(item entity.HistoryItem) bool {
			return item.ID == id
		})
		if found = len(items) != n; !found {
			return nil
		}

		return put(ctx, tx, keyHistory, encodeHistory(items))
	})
	if err != nil {
		return storageError(op, "failed to remove link", err)
	}

	if !found {
		return fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
	}

	return nil
}
