package domain

// Role is the permission tier of a user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

// Roles lists every role, highest privilege first.
func Roles() []Role { return []Role{RoleAdmin, RoleManager, RoleStaff} }

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
