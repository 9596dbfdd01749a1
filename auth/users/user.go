package users

import (
	"github.com/google/uuid"
)

// Role is the closed set of access levels. Exactly one role per user,
// fixed at creation.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleAdmin
}

// CanModerate reports whether the role may act on match records it does
// not own. Every cross-owner access decision goes through here.
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

type User struct {
	ID   uuid.UUID
	Name string
	Role Role
}
