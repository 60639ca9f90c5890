package domain

// Principal is the request-scoped authorization context built fresh from a
// verified token on every request. It is never cached or persisted; the role
// document is re-fetched per request so role edits take effect immediately for
// every holder.
type Principal struct {
	UserID string
	Email  string
	// Role is the role name from the user record (source of truth).
	Role  string
	Class RoleClass
	// Permissions is role.Permissions ∪ user.RolePermissions.
	Permissions []string
	// RoleObject is the live role document, nil when the role was deleted
	// after the holder logged in (login-time-only validation).
	RoleObject *Role

	permSet map[string]struct{}
}

// NewPrincipal builds a Principal for a user and its resolved role document.
// role may be nil; the permission set then contains only the user's overrides.
func NewPrincipal(user *User, role *Role) *Principal {
	p := &Principal{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       NormalizeRoleName(user.Role),
		Class:      ClassifyRole(user.Role),
		RoleObject: role,
		permSet:    make(map[string]struct{}),
	}
	if role != nil {
		for _, perm := range role.Permissions {
			p.addPermission(perm)
		}
	}
	for _, perm := range user.RolePermissions {
		p.addPermission(perm)
	}
	return p
}

func (p *Principal) addPermission(perm string) {
	if _, ok := p.permSet[perm]; ok {
		return
	}
	p.permSet[perm] = struct{}{}
	p.Permissions = append(p.Permissions, perm)
}

// IsSuperAdmin reports whether the principal holds the superadmin role, the
// unconditional ceiling of every permission check.
func (p *Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// HasPermission reports whether the principal may perform the operation the
// permission token guards. Superadmin passes unconditionally; otherwise the
// token must be in the resolved permission set, with a fallback scan of the
// role document for permissions granted after the set was built.
func (p *Principal) HasPermission(token string) bool {
	if p.IsSuperAdmin() {
		return true
	}
	if _, ok := p.permSet[token]; ok {
		return true
	}
	return p.RoleObject != nil && p.RoleObject.HasPermission(token)
}

// HasAnyPermission reports whether at least one token is granted.
func (p *Principal) HasAnyPermission(tokens ...string) bool {
	if p.IsSuperAdmin() {
		return true
	}
	for _, t := range tokens {
		if p.HasPermission(t) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every token is granted.
func (p *Principal) HasAllPermissions(tokens ...string) bool {
	if p.IsSuperAdmin() {
		return true
	}
	for _, t := range tokens {
		if !p.HasPermission(t) {
			return false
		}
	}
	return true
}

// IsAdminTier reports whether the principal belongs to the administrative
// tier. The classification is a deny-list: every role name not recognised as a
// standard end-user role (customer, agent, vendor, builder) counts as
// admin-tier. See ClassifyRole.
func (p *Principal) IsAdminTier() bool {
	return p.Class == ClassAdminTier
}

// AtLeastLevel reports whether the principal clears a numeric seniority
// threshold. Standard roles pass only when named in allowedNames; custom roles
// (names outside the five canonical ones) pass purely on their role document's
// level, never on their name. That keeps a custom role called "admin2" from
// inheriting admin routes without also being granted a sufficient level.
func (p *Principal) AtLeastLevel(threshold int, allowedNames ...string) bool {
	for _, name := range allowedNames {
		if p.Role == name {
			return true
		}
	}
	if IsCanonicalRole(p.Role) {
		return false
	}
	return p.RoleObject != nil && p.RoleObject.Level >= threshold
}

// IsAdmin is the canonical admin gate: admin or superadmin by name, or a
// custom role with level >= AdminLevelThreshold.
func (p *Principal) IsAdmin() bool {
	return p.AtLeastLevel(AdminLevelThreshold, RoleAdmin, RoleSuperAdmin)
}

// IsSubAdmin is the canonical subadmin gate: subadmin, admin or superadmin by
// name, or a custom role with level >= SubAdminLevelThreshold.
func (p *Principal) IsSubAdmin() bool {
	return p.AtLeastLevel(SubAdminLevelThreshold, RoleSubAdmin, RoleAdmin, RoleSuperAdmin)
}

// Pages returns the role's visible page identifiers. Pages drive client-side
// navigation only and are never an API authorization boundary.
func (p *Principal) Pages() []string {
	if p.RoleObject == nil {
		return nil
	}
	return p.RoleObject.Pages
}
