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

type templateRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Source    string          `json:"utm_source"`
	Medium    string          `json:"utm_medium"`
	CreatedAt json.RawMessage `json:"createdAt"`
	GroupID   *string         `json:"groupId"`
}

type storedTemplate struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Source    string  `json:"utm_source"`
	Medium    string  `json:"utm_medium"`
	CreatedAt string  `json:"createdAt"`
	GroupID   *string `json:"groupId,omitempty"`
}

type storedGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// decodeTemplates drops records without an id. Templates saved before
// timestamps were recorded keep a zero CreatedAt.
func decodeTemplates(doc json.RawMessage) []entity.Template {
	var records []json.RawMessage
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil
	}

	templates := make([]entity.Template, 0, len(records))
	for _, b := range records {
		var rec templateRecord
		if err := json.Unmarshal(b, &rec); err != nil || rec.ID == "" {
			continue
		}

		createdAt, _ := parseTimestamp(rec.CreatedAt)

		t := entity.Template{
			ID:        rec.ID,
			Name:      rec.Name,
			Source:    rec.Source,
			Medium:    rec.Medium,
			CreatedAt: createdAt,
		}
		if rec.GroupID != nil && *rec.GroupID != "" {
			t.GroupID = rec.GroupID
		}

		templates = append(templates, t)
	}

	return templates
}

func encodeTemplates(templates []entity.Template) []storedTemplate {
	out := make([]storedTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, storedTemplate{
			ID:        t.ID,
			Name:      t.Name,
			Source:    t.Source,
			Medium:    t.Medium,
			CreatedAt: formatTimestamp(t.CreatedAt),
			GroupID:   t.GroupID,
		})
	}
	return out
}

func loadTemplates(ctx context.Context, q sqlx.QueryerContext) ([]entity.Template, error) {
	doc, err := raw(ctx, q, keyTemplates)
	if err != nil || doc == nil {
		return nil, err
	}
	return decodeTemplates(doc), nil
}

func loadGroups(ctx context.Context, q sqlx.QueryerContext) ([]entity.TemplateGroup, error) {
	doc, err := raw(ctx, q, keyTemplateGroups)
	if err != nil || doc == nil {
		return nil, err
	}

	var records []storedGroup
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, nil
	}

	groups := make([]entity.TemplateGroup, 0, len(records))
	for _, g := range records {
		if g.ID == "" {
			continue
		}
		groups = append(groups, entity.TemplateGroup{ID: g.ID, Name: g.Name})
	}

	return groups, nil
}

func putGroups(ctx context.Context, tx *sqlx.Tx, groups []entity.TemplateGroup) error {
	out := make([]storedGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, storedGroup{ID: g.ID, Name: g.Name})
	}
	return put(ctx, tx, keyTemplateGroups, out)
}

func hasGroup(groups []entity.TemplateGroup, id string) bool {
	return slices.ContainsFunc(groups, func(g entity.TemplateGroup) bool {
		return g.ID == id
	})
}

type TemplateRepository struct {
	store *Store
}

func NewTemplateRepository(store *Store) *TemplateRepository {
	return &TemplateRepository{store: store}
}

func (r *TemplateRepository) checkGroup(ctx context.Context, tx *sqlx.Tx, groupID *string) (bool, error) {
	if groupID == nil {
		return true, nil
	}

	groups, err := loadGroups(ctx, tx)
	if err != nil {
		return false, err
	}

	return hasGroup(groups, *groupID), nil
}

func (r *TemplateRepository) SaveTemplate(ctx context.Context, t *entity.Template) error {
	const op = "adapter.repository.local.TemplateRepository.SaveTemplate"

	groupExists := true

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		var err error
		if groupExists, err = r.checkGroup(ctx, tx, t.GroupID); err != nil || !groupExists {
			return err
		}

		templates, err := loadTemplates(ctx, tx)
		if err != nil {
			return err
		}

		return put(ctx, tx, keyTemplates, encodeTemplates(append(templates, *t)))
	})
	if err != nil {
		return storageError(op, "failed to save template", err)
	}

	if !groupExists {
		return fmt.Errorf("%s: %w", op, entity.ErrGroupNotFound)
	}

	return nil
}

func (r *TemplateRepository) UpdateTemplate(ctx context.Context, t *entity.Template) error {
	const op = "adapter.repository.local.TemplateRepository.UpdateTemplate"

	var missing error

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		templates, err := loadTemplates(ctx, tx)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(templates, func(s entity.Template) bool { return s.ID == t.ID })
		if i < 0 {
			missing = entity.ErrTemplateNotFound
			return nil
		}

		ok, err := r.checkGroup(ctx, tx, t.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			missing = entity.ErrGroupNotFound
			return nil
		}

		templates[i] = *t
		return put(ctx, tx, keyTemplates, encodeTemplates(templates))
	})
	if err != nil {
		return storageError(op, "failed to update template", err)
	}

	if missing != nil {
		return fmt.Errorf("%s: %w", op, missing)
	}

	return nil
}

func (r *TemplateRepository) FindTemplate(ctx context.Context, id string) (*entity.Template, error) {
	const op = "adapter.repository.local.TemplateRepository.FindTemplate"

	templates, err := loadTemplates(ctx, r.store.db)
	if err != nil {
		return nil, storageError(op, "failed to load templates", err)
	}

	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
}

func (r *TemplateRepository) ListTemplates(ctx context.Context) ([]entity.Template, error) {
	const op = "adapter.repository.local.TemplateRepository.ListTemplates"

	templates, err := loadTemplates(ctx, r.store.db)
	if err != nil {
		return nil, storageError(op, "failed to load templates", err)
	}

	if templates == nil {
		templates = []entity.Template{}
	}

	slices.SortStableFunc(templates, func(a, b entity.Template) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return templates, nil
}

func (r *TemplateRepository) RemoveTemplate(ctx context.Context, id string) error {
	const op = "adapter.repository.local.TemplateRepository.RemoveTemplate"

	var found bool

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		templates, err := loadTemplates(ctx, tx)
		if err != nil {
			return err
		}

		n := len(templates)
		templates = slices.DeleteFunc(templates, func(t entity.Template) bool { return t.ID == id })
		if found = len(templates) != n; !found {
			return nil
		}

		return put(ctx, tx, keyTemplates, encodeTemplates(templates))
	})
	if err != nil {
		return storageError(op, "failed to remove template", err)
	}

	if !found {
		return fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
	}

	return nil
}

func (r *TemplateRepository) SaveGroup(ctx context.Context, g *entity.TemplateGroup) error {
	const op = "adapter.repository.local.TemplateRepository.SaveGroup"

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		groups, err := loadGroups(ctx, tx)
		if err != nil {
			return err
		}

		return putGroups(ctx, tx, append(groups, *g))
	})
	if err != nil {
		return storageError(op, "failed to save group", err)
	}

	return nil
}

func (r *TemplateRepository) ListGroups(ctx context.Context) ([]entity.TemplateGroup, error) {
	const op = "adapter.repository.local.TemplateRepository.ListGroups"

	groups, err := loadGroups(ctx, r.store.db)
	if err != nil {
		return nil, storageError(op, "failed to load groups", err)
	}

	if groups == nil {
		groups = []entity.TemplateGroup{}
	}

	slices.SortStableFunc(groups, func(a, b entity.TemplateGroup) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return groups, nil
}

// RemoveGroup rewrites both the groups and the templates documents in one transaction.
func (r *TemplateRepository) RemoveGroup(ctx context.Context, id string) error {
	const op = "adapter.repository.local.TemplateRepository.RemoveGroup"

	var found bool

	err := r.store.update(ctx, func(tx *sqlx.Tx) error {
		groups, err := loadGroups(ctx, tx)
		if err != nil {
			return err
		}

		n := len(groups)
		groups = slices.DeleteFunc(groups, func(g entity.TemplateGroup) bool { return g.ID == id })
		if found = len(groups) != n; !found {
			return nil
		}

		templates, err := loadTemplates(ctx, tx)
		if err != nil {
			return err
		}

		for i := range templates {
			if templates[i].InGroup(id) {
				templates[i].GroupID = nil
			}
		}

		if err := putGroups(ctx, tx, groups); err != nil {
			return err
		}
		return put(ctx, tx, keyTemplates, encodeTemplates(templates))
	})
	if err != nil {
		return storageError(op, "failed to remove group", err)
	}

	if !found {
		return fmt.Errorf("%s: %w", op, entity.ErrGroupNotFound)
	}

	return nil
}
