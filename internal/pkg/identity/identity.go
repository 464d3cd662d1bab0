// Package identity holds the already-authenticated caller identity supplied
// by the surrounding system. The core never issues credentials; it only
// compares the caller id against owners/requesters and consults the
// privileged flag.
package identity

import "github.com/google/uuid"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Actor identifies one caller for the duration of one operation.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// IsPrivileged reports whether the actor may act in place of an asset owner.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin
}
