package entity

import "fmt"

// Keys under which preferences are persisted.
const (
	KeyHistoryViewMode   = "history.viewMode"
	KeyHistorySortOrder  = "history.sortOrder"
	KeyTemplatesViewMode = "templates.viewMode"
	KeyLoggedIn          = "auth.isLoggedIn"
)

// ViewMode is the layout used to display a collection.
type ViewMode string

const (
	ViewModeList  ViewMode = "list"
	ViewModeGrid  ViewMode = "grid"
	ViewModeTable ViewMode = "table"
)

// ParseViewMode converts s into a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case ViewModeList, ViewModeGrid, ViewModeTable:
		return m, nil
	default:
		return "", fmt.Errorf("view mode %q: %w", s, ErrInvalidPreference)
	}
}

// SortOrder is the order in which history items are listed.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder converts s into a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortNewest, SortOldest:
		return o, nil
	default:
		return "", fmt.Errorf("sort order %q: %w", s, ErrInvalidPreference)
	}
}

// Preferences are the persisted display settings.
type Preferences struct {
	HistoryViewMode   ViewMode
	HistorySortOrder  SortOrder
	TemplatesViewMode ViewMode
	LoggedIn          bool
}

// DefaultPreferences returns the settings used when nothing is stored yet.
func DefaultPreferences() Preferences {
	return Preferences{
		HistoryViewMode:   ViewModeList,
		HistorySortOrder:  SortNewest,
		TemplatesViewMode: ViewModeList,
	}
}

// PreferencesPatch describes a partial preferences update.
type PreferencesPatch struct {
	HistoryViewMode   *ViewMode
	HistorySortOrder  *SortOrder
	TemplatesViewMode *ViewMode
}
