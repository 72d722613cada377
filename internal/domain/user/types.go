package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageSpaces reports whether the role may create listings and blocks.
func (r Role) CanManageSpaces() bool {
	return r == RoleHost || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
