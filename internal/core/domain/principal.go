package domain

// Role is an employee's role within their company.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// In reports whether r is one of roles. An empty set admits every role.
func (r Role) In(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// Principal is the authenticated caller of a request. Role and tenant are
// loaded from the store on every request, not trusted from the token.
type Principal struct {
	ID         string
	TenantCode TenantCode
	Role       Role
}

// CanManage reports whether the principal may create or change tasks and meetings.
func (p Principal) CanManage() bool {
	return p.Role.In(RoleAdmin, RoleManager)
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
