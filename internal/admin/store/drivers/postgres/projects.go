package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

type projectsRepo struct {
	db *gorm.DB
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	m := toProjectModel(p)
	return mapError(r.db.WithContext(ctx).Omit("Creator").Create(&m).Error)
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	var m projectModel
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", id).Take(&m).Error; err != nil {
		return domain.Project{}, mapError(err)
	}
	return m.toDomain(), nil
}

func projectScope(f domain.ProjectFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !f.IncludeDeleted {
			db = db.Where("is_deleted = ?", false)
		}
		if f.Search != "" {
			p := likePattern(f.Search)
			db = db.Where("(name ILIKE ? OR description ILIKE ?)", p, p)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status.String())
		}
		return db
	}
}

func (r *projectsRepo) ListProjects(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	page, limit := domain.NormalizePaging(f.Page, f.Limit)
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&projectModel{}).Scopes(projectScope(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []projectModel
	err := db.Preload("Creator").
		Scopes(projectScope(f)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(domain.Offset(page, limit)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, m := range rows {
		projects = append(projects, m.toDomain())
	}
	return projects, int(total), nil
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	return expectOne(r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"status":      p.Status.String(),
			"is_deleted":  p.IsDeleted,
			"updated_at":  p.UpdatedAt.UTC(),
		}))
}

func (r *projectsRepo) CountProjects(ctx context.Context, status domain.ProjectStatus, deleted bool) (int, error) {
	db := r.db.WithContext(ctx).Model(&projectModel{}).Where("is_deleted = ?", deleted)
	if status != "" {
		db = db.Where("status = ?", status.String())
	}
	var n int64
	err := db.Count(&n).Error
	return int(n), err
}
