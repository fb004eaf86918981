package domain

import "time"

type Invite struct {
	ID         string
	Email      string // lowercase
	Role       Role
	TokenHash  string // SHA-256 fingerprint of the opaque token
	InvitedBy  string // user id of the admin who created it
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (i Invite) IsAccepted() bool { return i.AcceptedAt != nil }

func (i Invite) IsExpired(now time.Time) bool { return !now.Before(i.ExpiresAt) }

// IsPending reports whether the invite can still be redeemed.
func (i Invite) IsPending(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}
