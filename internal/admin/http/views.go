package http

import (
	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
)

// The functions below build the outward projections of domain records.
// Password hashes and token fingerprints never leave the service.

func toUser(u domain.User) adminsdk.User {
	return adminsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Status:    u.Status.String(),
		InvitedAt: u.InvitedAt,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toInvite(inv domain.Invite) adminsdk.Invite {
	return adminsdk.Invite{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role.String(),
		InvitedBy: inv.InvitedBy,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func toProject(p domain.Project) adminsdk.Project {
	out := adminsdk.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Creator != nil {
		out.CreatedBy = &adminsdk.Creator{ID: p.Creator.ID, Name: p.Creator.Name, Email: p.Creator.Email}
	}
	return out
}

func toPagination[T any](p domain.Page[T]) adminsdk.Pagination {
	return adminsdk.Pagination{
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(),
		TotalCount:  p.Total,
		Limit:       p.Limit,
		HasNextPage: p.HasNext(),
		HasPrevPage: p.HasPrev(),
	}
}

func toUserStats(s domain.UserStats) adminsdk.UserStats {
	out := adminsdk.UserStats{
		Total:    s.Total,
		Active:   s.Active,
		Inactive: s.Inactive,
		ByRole:   make([]adminsdk.RoleCount, 0, len(s.ByRole)),
	}
	for _, rc := range s.ByRole {
		out.ByRole = append(out.ByRole, adminsdk.RoleCount{Role: rc.Role.String(), Count: rc.Count})
	}
	return out
}

func toProjectStats(s domain.ProjectStats) adminsdk.ProjectStats {
	return adminsdk.ProjectStats{
		Total:    s.Total,
		Active:   s.Active,
		Archived: s.Archived,
		Deleted:  s.Deleted,
	}
}
