package postgres

import (
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

type userModel struct {
	ID           string     `gorm:"primaryKey;size:26"`
	Name         string     `gorm:"not null;size:50"`
	Email        string     `gorm:"not null;uniqueIndex:users_email_uniq"`
	PasswordHash string     `gorm:"not null"`
	Role         string     `gorm:"not null;size:16;index"`
	Status       string     `gorm:"not null;size:16;index"`
	InvitedAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"not null;type:timestamptz"`
	UpdatedAt    time.Time  `gorm:"not null;type:timestamptz"`
}

func (userModel) TableName() string { return "users" }

type inviteModel struct {
	ID         string     `gorm:"primaryKey;size:26"`
	Email      string     `gorm:"not null;index:invites_email_accepted_idx"`
	Role       string     `gorm:"not null;size:16"`
	TokenHash  string     `gorm:"not null;uniqueIndex:invites_token_hash_uniq"`
	InvitedBy  string     `gorm:"not null;size:26"`
	Inviter    *userModel `gorm:"foreignKey:InvitedBy;references:ID"`
	ExpiresAt  time.Time  `gorm:"not null;type:timestamptz"`
	AcceptedAt *time.Time `gorm:"type:timestamptz;index:invites_email_accepted_idx"`
	CreatedAt  time.Time  `gorm:"not null;type:timestamptz"`
	UpdatedAt  time.Time  `gorm:"not null;type:timestamptz"`
}

func (inviteModel) TableName() string { return "invites" }

type projectModel struct {
	ID          string     `gorm:"primaryKey;size:26"`
	Name        string     `gorm:"not null;size:100"`
	Description string     `gorm:"not null;size:500;default:''"`
	Status      string     `gorm:"not null;size:16;index:projects_status_deleted_idx"`
	IsDeleted   bool       `gorm:"not null;default:false;index:projects_status_deleted_idx"`
	CreatedBy   string     `gorm:"not null;size:26;index"`
	Creator     *userModel `gorm:"foreignKey:CreatedBy;references:ID"`
	CreatedAt   time.Time  `gorm:"not null;type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"not null;type:timestamptz"`
}

func (projectModel) TableName() string { return "projects" }

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func toUserModel(u domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Status:       u.Status.String(),
		InvitedAt:    utcPtr(u.InvitedAt),
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (m userModel) toDomain() domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		Status:       domain.UserStatus(m.Status),
		InvitedAt:    utcPtr(m.InvitedAt),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toInviteModel(inv domain.Invite) inviteModel {
	return inviteModel{
		ID:         inv.ID,
		Email:      inv.Email,
		Role:       inv.Role.String(),
		TokenHash:  inv.TokenHash,
		InvitedBy:  inv.InvitedBy,
		ExpiresAt:  inv.ExpiresAt.UTC(),
		AcceptedAt: utcPtr(inv.AcceptedAt),
		CreatedAt:  inv.CreatedAt.UTC(),
		UpdatedAt:  inv.UpdatedAt.UTC(),
	}
}

func (m inviteModel) toDomain() domain.Invite {
	return domain.Invite{
		ID:         m.ID,
		Email:      m.Email,
		Role:       domain.Role(m.Role),
		TokenHash:  m.TokenHash,
		InvitedBy:  m.InvitedBy,
		ExpiresAt:  m.ExpiresAt.UTC(),
		AcceptedAt: utcPtr(m.AcceptedAt),
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func toProjectModel(p domain.Project) projectModel {
	return projectModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		IsDeleted:   p.IsDeleted,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func (m projectModel) toDomain() domain.Project {
	p := domain.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      domain.ProjectStatus(m.Status),
		IsDeleted:   m.IsDeleted,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
	if m.Creator != nil {
		p.Creator = &domain.Creator{ID: m.Creator.ID, Name: m.Creator.Name, Email: m.Creator.Email}
	}
	return p
}
