package enum

// Role is a staff role. Roles form an ordered hierarchy; a role satisfies
// any requirement at or below its own level.
type Role string

const (
	RoleViewer        Role = "Viewer"
	RoleGroceryKeeper Role = "Grocery Keeper"
	RoleAdmin         Role = "Admin"
)

// Level returns the permission level of the role. Unknown roles map to 0
// and therefore satisfy nothing.
func (r Role) Level() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleGroceryKeeper:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// Allows reports whether a caller holding r may perform an operation that
// requires at least the given role.
func (r Role) Allows(required Role) bool {
	return r.Level() >= required.Level() && r.Level() > 0
}

// IsValid reports whether r names a known role.
func (r Role) IsValid() bool {
	return r.Level() > 0
}
