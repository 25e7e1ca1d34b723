// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
	// RoleFarmer indicates a selling farmer.
	RoleFarmer Role = "farmer"
	// RoleConsumer indicates a buying consumer. New accounts default to this role.
	RoleConsumer Role = "consumer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFarmer, RoleConsumer:
		return true
	default:
		return false
	}
}

// ParseRole converts a string into a Role, reporting whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
