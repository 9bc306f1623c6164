package entity

// Role represents the kind of operator account.
type Role string

const (
	// RoleAdmin is a regular console operator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin may additionally manage other operators.
	RoleSuperAdmin Role = "superadmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
