package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

type templateDB struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Source    string         `db:"source"`
	Medium    string         `db:"medium"`
	CreatedAt time.Time      `db:"created_at"`
	GroupID   sql.NullString `db:"group_id"`
}

func (t *templateDB) toEntity() *entity.Template {
	tpl := &entity.Template{
		ID:        t.ID,
		Name:      t.Name,
		Source:    t.Source,
		Medium:    t.Medium,
		CreatedAt: t.CreatedAt.UTC(),
	}
	if t.GroupID.Valid {
		groupID := t.GroupID.String
		tpl.GroupID = &groupID
	}
	return tpl
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

type groupDB struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

var templateColumns = []string{"id", "name", "source", "medium", "created_at", "group_id"}

type TemplateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) SaveTemplate(ctx context.Context, t *entity.Template) error {
	const op = "adapter.repository.postgres.TemplateRepository.SaveTemplate"

	query, args, err := psql.Insert("templates").
		Columns(templateColumns...).
		Values(t.ID, t.Name, t.Source, t.Medium, t.CreatedAt, nullString(t.GroupID)).
		ToSql()
	if err != nil {
		return storageError(op, "failed to build query", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolationError(err) {
			return fmt.Errorf("%s: %w", op, entity.ErrGroupNotFound)
		}

		return storageError(op, "failed to insert into templates table", err)
	}

	return nil
}

func (r *TemplateRepository) UpdateTemplate(ctx context.Context, t *entity.Template) error {
	const op = "adapter.repository.postgres.TemplateRepository.UpdateTemplate"

	query, args, err := psql.Update("templates").
		Set("name", t.Name).
		Set("source", t.Source).
		Set("medium", t.Medium).
		Set("group_id", nullString(t.GroupID)).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return storageError(op, "failed to build query", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolationError(err) {
			return fmt.Errorf("%s: %w", op, entity.ErrGroupNotFound)
		}

		return storageError(op, "failed to update templates table row", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageError(op, "failed to get number of affected rows", err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
	}

	return nil
}

func (r *TemplateRepository) FindTemplate(ctx context.Context, id string) (*entity.Template, error) {
	const op = "adapter.repository.postgres.TemplateRepository.FindTemplate"
	const query = `SELECT id, name, source, medium, created_at, group_id FROM templates WHERE id = $1`

	var t templateDB

	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
		}

		return nil, storageError(op, "failed to get row from templates table", err)
	}

	return t.toEntity(), nil
}

func (r *TemplateRepository) ListTemplates(ctx context.Context) ([]entity.Template, error) {
	const op = "adapter.repository.postgres.TemplateRepository.ListTemplates"

	query, args, err := psql.Select(templateColumns...).
		From("templates").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, storageError(op, "failed to build query", err)
	}

	var rows []templateDB
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageError(op, "failed to select from templates table", err)
	}

	templates := make([]entity.Template, 0, len(rows))
	for i := range rows {
		templates = append(templates, *rows[i].toEntity())
	}

	return templates, nil
}

func (r *TemplateRepository) RemoveTemplate(ctx context.Context, id string) error {
	const op = "adapter.repository.postgres.TemplateRepository.RemoveTemplate"
	const query = `DELETE FROM templates WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageError(op, "failed to delete from templates table", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageError(op, "failed to get number of affected rows", err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
	}

	return nil
}

func (r *TemplateRepository) SaveGroup(ctx context.Context, g *entity.TemplateGroup) error {
	const op = "adapter.repository.postgres.TemplateRepository.SaveGroup"
	const query = `INSERT INTO template_groups(id, name) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, g.ID, g.Name); err != nil {
		return storageError(op, "failed to insert into template_groups table", err)
	}

	return nil
}

func (r *TemplateRepository) ListGroups(ctx context.Context) ([]entity.TemplateGroup, error) {
	const op = "adapter.repository.postgres.TemplateRepository.ListGroups"
	const query = `SELECT id, name FROM template_groups ORDER BY name ASC, id ASC`

	var rows []groupDB
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageError(op, "failed to select from template_groups table", err)
	}

	groups := make([]entity.TemplateGroup, 0, len(rows))
	for _, g := range rows {
		groups = append(groups, entity.TemplateGroup{ID: g.ID, Name: g.Name})
	}

	return groups, nil
}

// RemoveGroup ungroups the member templates and deletes the group in one transaction.
func (r *TemplateRepository) RemoveGroup(ctx context.Context, id string) (err error) {
	const op = "adapter.repository.postgres.TemplateRepository.RemoveGroup"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(op, "failed to begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `UPDATE templates SET group_id = NULL WHERE group_id = $1`, id); err != nil {
		return storageError(op, "failed to ungroup templates", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM template_groups WHERE id = $1`, id)
	if err != nil {
		return storageError(op, "failed to delete from template_groups table", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageError(op, "failed to get number of affected rows", err)
	}

	if rowsAffected != 1 {
		err = fmt.Errorf("%s: %w", op, entity.ErrGroupNotFound)
		return err
	}

	if err = tx.Commit(); err != nil {
		return storageError(op, "failed to commit transaction", err)
	}

	return nil
}
