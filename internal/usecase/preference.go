package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

type PreferenceUseCase struct {
	logger   *slog.Logger
	prefRepo PreferenceRepository
}

func NewPreferenceUseCase(logger *slog.Logger, prefRepo PreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{
		logger:   logger,
		prefRepo: prefRepo,
	}
}

// Preferences returns the stored preferences. Missing or invalid values
// are replaced by their defaults.
func (uc *PreferenceUseCase) Preferences(ctx context.Context) (*entity.Preferences, error) {
	const op = "usecase.PreferenceUseCase.Preferences"

	values, err := uc.prefRepo.Preferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get preferences: %w", op, err)
	}

	prefs := entity.DefaultPreferences()

	if v, ok := values[entity.KeyHistoryViewMode]; ok {
		if m, err := entity.ParseViewMode(v); err == nil {
			prefs.HistoryViewMode = m
		} else {
			uc.logInvalid(ctx, entity.KeyHistoryViewMode, v)
		}
	}
	if v, ok := values[entity.KeyHistorySortOrder]; ok {
		if o, err := entity.ParseSortOrder(v); err == nil {
			prefs.HistorySortOrder = o
		} else {
			uc.logInvalid(ctx, entity.KeyHistorySortOrder, v)
		}
	}
	if v, ok := values[entity.KeyTemplatesViewMode]; ok {
		if m, err := entity.ParseViewMode(v); err == nil {
			prefs.TemplatesViewMode = m
		} else {
			uc.logInvalid(ctx, entity.KeyTemplatesViewMode, v)
		}
	}
	if v, ok := values[entity.KeyLoggedIn]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			prefs.LoggedIn = b
		} else {
			uc.logInvalid(ctx, entity.KeyLoggedIn, v)
		}
	}

	return &prefs, nil
}

func (uc *PreferenceUseCase) logInvalid(ctx context.Context, key, value string) {
	uc.logger.WarnContext(ctx, "ignoring invalid stored preference",
		slog.String("key", key),
		slog.String("value", value),
	)
}

// UpdatePreferences stores the non-nil fields of patch and returns the result.
func (uc *PreferenceUseCase) UpdatePreferences(ctx context.Context, patch entity.PreferencesPatch) (*entity.Preferences, error) {
	const op = "usecase.PreferenceUseCase.UpdatePreferences"

	values := make(map[string]string, 3)

	if patch.HistoryViewMode != nil {
		m, err := entity.ParseViewMode(string(*patch.HistoryViewMode))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		values[entity.KeyHistoryViewMode] = string(m)
	}
	if patch.HistorySortOrder != nil {
		o, err := entity.ParseSortOrder(string(*patch.HistorySortOrder))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		values[entity.KeyHistorySortOrder] = string(o)
	}
	if patch.TemplatesViewMode != nil {
		m, err := entity.ParseViewMode(string(*patch.TemplatesViewMode))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		values[entity.KeyTemplatesViewMode] = string(m)
	}

	if len(values) > 0 {
		if err := uc.prefRepo.SetPreferences(ctx, values); err != nil {
			return nil, fmt.Errorf("%s: failed to set preferences: %w", op, err)
		}
	}

	return uc.Preferences(ctx)
}

// SetLoggedIn persists the login flag.
func (uc *PreferenceUseCase) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	const op = "usecase.PreferenceUseCase.SetLoggedIn"

	err := uc.prefRepo.SetPreferences(ctx, map[string]string{
		entity.KeyLoggedIn: strconv.FormatBool(loggedIn),
	})
	if err != nil {
		return fmt.Errorf("%s: failed to set preferences: %w", op, err)
	}

	return nil
}
