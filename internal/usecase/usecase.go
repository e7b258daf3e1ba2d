// Package usecase implements the application logic on top of the repositories.
package usecase

//go:generate mockery

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

// HistoryRepository persists generated links.
type HistoryRepository interface {
	SaveLink(ctx context.Context, item *entity.HistoryItem) error
	ListLinks(ctx context.Context, order entity.SortOrder) ([]entity.HistoryItem, error)
	// RemoveLink returns entity.ErrLinkNotFound when id is unknown.
	RemoveLink(ctx context.Context, id string) error
}

// TemplateRepository persists templates and their groups.
type TemplateRepository interface {
	// SaveTemplate returns entity.ErrGroupNotFound when the template refers to an unknown group.
	SaveTemplate(ctx context.Context, t *entity.Template) error
	UpdateTemplate(ctx context.Context, t *entity.Template) error
	FindTemplate(ctx context.Context, id string) (*entity.Template, error)
	ListTemplates(ctx context.Context) ([]entity.Template, error)
	RemoveTemplate(ctx context.Context, id string) error

	SaveGroup(ctx context.Context, g *entity.TemplateGroup) error
	ListGroups(ctx context.Context) ([]entity.TemplateGroup, error)
	// RemoveGroup deletes the group and moves its templates out of it.
	RemoveGroup(ctx context.Context, id string) error
}

// PreferenceRepository persists preferences as raw key/value pairs.
type PreferenceRepository interface {
	Preferences(ctx context.Context) (map[string]string, error)
	SetPreferences(ctx context.Context, values map[string]string) error
}

const idLength = 21

func newID() (string, error) {
	return gonanoid.New(idLength)
}

// now returns the current time with millisecond precision, the resolution
// every store keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
