package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/utm"
)

type TemplateUseCase struct {
	logger       *slog.Logger
	templateRepo TemplateRepository
	now          func() time.Time
	newID        func() (string, error)
}

func NewTemplateUseCase(logger *slog.Logger, templateRepo TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{
		logger:       logger,
		templateRepo: templateRepo,
		now:          now,
		newID:        newID,
	}
}

func normalizeGroupID(groupID *string) *string {
	if groupID == nil || strings.TrimSpace(*groupID) == "" {
		return nil
	}
	id := strings.TrimSpace(*groupID)
	return &id
}

func (uc *TemplateUseCase) CreateTemplate(ctx context.Context, name, source, medium string, groupID *string) (*entity.Template, error) {
	const op = "usecase.TemplateUseCase.CreateTemplate"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyName)
	}

	id, err := uc.newID()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to generate id: %w", op, err)
	}

	t := &entity.Template{
		ID:        id,
		Name:      name,
		Source:    strings.TrimSpace(source),
		Medium:    strings.TrimSpace(medium),
		CreatedAt: uc.now(),
		GroupID:   normalizeGroupID(groupID),
	}

	if err := uc.templateRepo.SaveTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("%s: failed to save template: %w", op, err)
	}

	return t, nil
}

// UpdateTemplate applies patch to the template with the given id.
func (uc *TemplateUseCase) UpdateTemplate(ctx context.Context, id string, patch entity.TemplatePatch) (*entity.Template, error) {
	const op = "usecase.TemplateUseCase.UpdateTemplate"

	t, err := uc.templateRepo.FindTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find template: %w", op, err)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyName)
		}
		t.Name = name
	}
	if patch.Source != nil {
		t.Source = strings.TrimSpace(*patch.Source)
	}
	if patch.Medium != nil {
		t.Medium = strings.TrimSpace(*patch.Medium)
	}
	if patch.GroupID != nil {
		t.GroupID = normalizeGroupID(patch.GroupID)
	}

	if err := uc.templateRepo.UpdateTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("%s: failed to update template: %w", op, err)
	}

	return t, nil
}

// RemoveTemplate deletes a template. Removing an unknown id is not an error.
func (uc *TemplateUseCase) RemoveTemplate(ctx context.Context, id string) error {
	const op = "usecase.TemplateUseCase.RemoveTemplate"

	err := uc.templateRepo.RemoveTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrTemplateNotFound) {
			uc.logger.InfoContext(ctx, "template to remove not found", slog.String("id", id))
			return nil
		}

		return fmt.Errorf("%s: failed to remove template: %w", op, err)
	}

	return nil
}

func (uc *TemplateUseCase) FindTemplate(ctx context.Context, id string) (*entity.Template, error) {
	const op = "usecase.TemplateUseCase.FindTemplate"

	t, err := uc.templateRepo.FindTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find template: %w", op, err)
	}

	return t, nil
}

func (uc *TemplateUseCase) ListTemplates(ctx context.Context) ([]entity.Template, error) {
	const op = "usecase.TemplateUseCase.ListTemplates"

	templates, err := uc.templateRepo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list templates: %w", op, err)
	}

	return templates, nil
}

// LoadTemplate applies the template with the given id to form.
func (uc *TemplateUseCase) LoadTemplate(ctx context.Context, id string, form *utm.Form) error {
	const op = "usecase.TemplateUseCase.LoadTemplate"

	t, err := uc.templateRepo.FindTemplate(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: failed to find template: %w", op, err)
	}

	form.LoadTemplate(t)
	return nil
}

func (uc *TemplateUseCase) CreateGroup(ctx context.Context, name string) (*entity.TemplateGroup, error) {
	const op = "usecase.TemplateUseCase.CreateGroup"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyName)
	}

	id, err := uc.newID()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to generate id: %w", op, err)
	}

	g := &entity.TemplateGroup{ID: id, Name: name}

	if err := uc.templateRepo.SaveGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("%s: failed to save group: %w", op, err)
	}

	return g, nil
}

func (uc *TemplateUseCase) ListGroups(ctx context.Context) ([]entity.TemplateGroup, error) {
	const op = "usecase.TemplateUseCase.ListGroups"

	groups, err := uc.templateRepo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list groups: %w", op, err)
	}

	return groups, nil
}

// RemoveGroup deletes a group and ungroups its templates.
// Removing an unknown id is not an error.
func (uc *TemplateUseCase) RemoveGroup(ctx context.Context, id string) error {
	const op = "usecase.TemplateUseCase.RemoveGroup"

	err := uc.templateRepo.RemoveGroup(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrGroupNotFound) {
			uc.logger.InfoContext(ctx, "group to remove not found", slog.String("id", id))
			return nil
		}

		return fmt.Errorf("%s: failed to remove group: %w", op, err)
	}

	return nil
}
