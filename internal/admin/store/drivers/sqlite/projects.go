package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

const projectSelect = `SELECT p.id, p.name, p.description, p.status, p.is_deleted, p.created_by,
	p.created_at, p.updated_at, u.id, u.name, u.email
FROM projects p LEFT JOIN users u ON u.id = p.created_by`

type projectsRepo struct {
	db DBTX
}

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p                             domain.Project
		creatorID, creatorName, email sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.IsDeleted, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt, &creatorID, &creatorName, &email,
	)
	if err != nil {
		return domain.Project{}, err
	}
	if creatorID.Valid {
		p.Creator = &domain.Creator{ID: creatorID.String, Name: creatorName.String, Email: email.String}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, status, is_deleted, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Status, p.IsDeleted, p.CreatedBy, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, projectSelect+` WHERE p.id = ?`, id))
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func projectFilter(f domain.ProjectFilter) *where {
	w := &where{}
	if !f.IncludeDeleted {
		w.add(`p.is_deleted = 0`)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		w.add(`(p.name LIKE ? ESCAPE '\' OR p.description LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if f.Status != "" {
		w.add(`p.status = ?`, f.Status)
	}
	return w
}

func (r *projectsRepo) ListProjects(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	page, limit := domain.NormalizePaging(f.Page, f.Limit)
	w := projectFilter(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects p`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := append(append([]any{}, w.args...), limit, domain.Offset(page, limit))
	rows, err := r.db.QueryContext(ctx,
		projectSelect+w.String()+` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, status = ?, is_deleted = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.Status, p.IsDeleted, p.UpdatedAt.UTC(), p.ID,
	))
}

func (r *projectsRepo) CountProjects(ctx context.Context, status domain.ProjectStatus, deleted bool) (int, error) {
	w := &where{}
	w.add(`is_deleted = ?`, deleted)
	if status != "" {
		w.add(`status = ?`, status)
	}
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`+w.String(), w.args...).Scan(&n)
	return n, err
}
