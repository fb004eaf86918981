package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

// ProjectService manages projects. Deleted projects are kept in the store
// but are invisible to every operation except listings that ask for them.
type ProjectService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ProjectService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateProject creates an ACTIVE project owned by actorID.
func (s *ProjectService) CreateProject(ctx context.Context, actorID, name, description string) (domain.Project, error) {
	now := s.now()
	p := domain.Project{
		ID:          idx.NewAt(now).String(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Status:      domain.ProjectActive,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	slogx.FromContext(ctx).Info("project created", slog.String("project_id", p.ID))
	return s.GetProject(ctx, p.ID)
}

// ListProjects returns one page of projects matching f, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, f domain.ProjectFilter) (domain.Page[domain.Project], error) {
	f.Page, f.Limit = domain.NormalizePaging(f.Page, f.Limit)

	projects, total, err := s.Store.Projects().ListProjects(ctx, f)
	if err != nil {
		return domain.Page[domain.Project]{}, fmt.Errorf("list projects: %w", err)
	}
	return domain.Page[domain.Project]{Items: projects, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// GetProject returns a live project.
func (s *ProjectService) GetProject(ctx context.Context, id string) (domain.Project, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	if p.IsDeleted {
		return domain.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// UpdateProject applies the non-nil fields of upd.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (domain.Project, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return domain.Project{}, invalidField("status", "Status must be ACTIVE or ARCHIVED")
	}

	p, err := s.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		p.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	p.UpdatedAt = s.now()

	if err := s.save(ctx, p); err != nil {
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project updated", slog.String("project_id", p.ID))
	return p, nil
}

// DeleteProject soft deletes a project and returns its final state.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (domain.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	p.IsDeleted = true
	p.Status = domain.ProjectDeleted
	p.UpdatedAt = s.now()

	if err := s.save(ctx, p); err != nil {
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project deleted", slog.String("project_id", p.ID))
	return p, nil
}

func (s *ProjectService) save(ctx context.Context, p domain.Project) error {
	err := s.Store.Projects().UpdateProject(ctx, p)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Stats counts live projects overall and by status, plus deleted ones.
func (s *ProjectService) Stats(ctx context.Context) (domain.ProjectStats, error) {
	var stats domain.ProjectStats
	projects := s.Store.Projects()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = projects.CountProjects(gctx, "", false)
		return err
	})
	g.Go(func() (err error) {
		stats.Active, err = projects.CountProjects(gctx, domain.ProjectActive, false)
		return err
	})
	g.Go(func() (err error) {
		stats.Archived, err = projects.CountProjects(gctx, domain.ProjectArchived, false)
		return err
	})
	g.Go(func() (err error) {
		stats.Deleted, err = projects.CountProjects(gctx, "", true)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ProjectStats{}, fmt.Errorf("project stats: %w", err)
	}
	return stats, nil
}
