package domain

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ACTIVE"
	ProjectArchived ProjectStatus = "ARCHIVED"
	ProjectDeleted  ProjectStatus = "DELETED"
)

// Valid reports whether s can be set directly by a caller. DELETED is only
// reachable through a soft delete.
func (s ProjectStatus) Valid() bool {
	return s == ProjectActive || s == ProjectArchived
}

func (s ProjectStatus) String() string { return string(s) }

type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	IsDeleted   bool
	CreatedBy   string
	Creator     *Creator // populated on reads
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Creator is the public summary of the user who created a project.
type Creator struct {
	ID    string
	Name  string
	Email string
}

type ProjectFilter struct {
	Search         string // matched case-insensitively against name and description
	Status         ProjectStatus
	IncludeDeleted bool
	Page           int
	Limit          int
}

// ProjectUpdate carries the fields to change. Nil means unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
}

type ProjectStats struct {
	Total    int
	Active   int
	Archived int
	Deleted  int
}
