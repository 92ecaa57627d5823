package models

// RoleType defines the role attached to an identity
type RoleType string

const (
	RoleAdmin    RoleType = "ADMIN"
	RoleLecturer RoleType = "LECTURER"
	RoleStudent  RoleType = "STUDENT"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleLecturer, RoleStudent:
		return true
	}
	return false
}
