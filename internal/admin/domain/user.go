package domain

import "time"

// UserStatus controls whether a user may log in.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

func (s UserStatus) String() string { return string(s) }

type User struct {
	ID           string
	Name         string
	Email        string // lowercase, unique
	PasswordHash string // bcrypt encoded
	Role         Role
	Status       UserStatus
	InvitedAt    *time.Time // creation time of the invite the user registered with
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsActive() bool { return u.Status == UserActive }

// UserFilter narrows a user listing. Zero values mean "any".
type UserFilter struct {
	Search string // matched case-insensitively against name and email
	Role   Role
	Status UserStatus
	Page   int
	Limit  int
}

// RoleCount is the number of users holding a role.
type RoleCount struct {
	Role  Role
	Count int
}

type UserStats struct {
	Total    int
	Active   int
	Inactive int
	ByRole   []RoleCount
}
