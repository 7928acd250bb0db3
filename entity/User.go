package entity

const RoleSuperAdmin = "super-admin"

type User struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	CompanyID   int      `json:"company_id"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Can reports whether the user holds the permission. Super-admins hold
// everything.
func (u User) Can(permission string) bool {
	if u.HasRole(RoleSuperAdmin) {
		return true
	}
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
