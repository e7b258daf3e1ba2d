package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/utm"
)

// SubmissionCache remembers links generated for an idempotency key.
type SubmissionCache interface {
	Get(key string) (*entity.HistoryItem, bool)
	Set(key string, item *entity.HistoryItem)
}

type LinkUseCase struct {
	logger      *slog.Logger
	historyRepo HistoryRepository
	prefRepo    PreferenceRepository
	cache       SubmissionCache
	group       singleflight.Group
	now         func() time.Time
	newID       func() (string, error)
}

func NewLinkUseCase(
	logger *slog.Logger,
	historyRepo HistoryRepository,
	prefRepo PreferenceRepository,
	cache SubmissionCache,
) *LinkUseCase {
	return &LinkUseCase{
		logger:      logger,
		historyRepo: historyRepo,
		prefRepo:    prefRepo,
		cache:       cache,
		now:         now,
		newID:       newID,
	}
}

// GenerateLink resolves params, builds the link and appends it to the history.
func (uc *LinkUseCase) GenerateLink(ctx context.Context, params entity.LinkParameters) (*entity.HistoryItem, error) {
	const op = "usecase.LinkUseCase.GenerateLink"

	utmParams, err := utm.Resolve(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	link, err := utm.BuildLink(params.BaseURL, utmParams)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := uc.newID()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to generate id: %w", op, err)
	}

	item := &entity.HistoryItem{
		ID:        id,
		URL:       link,
		CreatedAt: uc.now(),
	}

	if err := uc.historyRepo.SaveLink(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: failed to save link: %w", op, err)
	}

	return item, nil
}

// GenerateLinkOnce is GenerateLink guarded against duplicate submissions:
// calls sharing key return the first generated item. An empty key disables the guard.
func (uc *LinkUseCase) GenerateLinkOnce(ctx context.Context, key string, params entity.LinkParameters) (*entity.HistoryItem, error) {
	const op = "usecase.LinkUseCase.GenerateLinkOnce"

	if key == "" {
		return uc.GenerateLink(ctx, params)
	}

	if item, ok := uc.cache.Get(key); ok {
		return item, nil
	}

	v, err, shared := uc.group.Do(key, func() (any, error) {
		if item, ok := uc.cache.Get(key); ok {
			return item, nil
		}

		item, err := uc.GenerateLink(ctx, params)
		if err != nil {
			return nil, err
		}

		uc.cache.Set(key, item)
		return item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if shared {
		uc.logger.DebugContext(ctx, "duplicate submission collapsed", slog.String("key", key))
	}

	item, _ := v.(*entity.HistoryItem)
	return item, nil
}

// ListLinks returns the history in the given order. An empty order falls
// back to the stored sort preference.
func (uc *LinkUseCase) ListLinks(ctx context.Context, order entity.SortOrder) ([]entity.HistoryItem, error) {
	const op = "usecase.LinkUseCase.ListLinks"

	if order == "" {
		prefs, err := uc.prefRepo.Preferences(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to get sort order: %w", op, err)
		}

		order = entity.SortNewest
		if stored, ok := prefs[entity.KeyHistorySortOrder]; ok {
			if o, err := entity.ParseSortOrder(stored); err == nil {
				order = o
			}
		}
	}

	items, err := uc.historyRepo.ListLinks(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	return items, nil
}

// RemoveLink deletes a history item. Removing an unknown id is not an error.
func (uc *LinkUseCase) RemoveLink(ctx context.Context, id string) error {
	const op = "usecase.LinkUseCase.RemoveLink"

	err := uc.historyRepo.RemoveLink(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLinkNotFound) {
			uc.logger.InfoContext(ctx, "link to remove not found", slog.String("id", id))
			return nil
		}

		return fmt.Errorf("%s: failed to remove link: %w", op, err)
	}

	return nil
}
