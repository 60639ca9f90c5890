package domain

import "testing"

func principalFor(roleName string, role *Role, overrides ...string) *Principal {
	return NewPrincipal(&User{
		ID:              "user_1",
		Email:           "user@example.com",
		Role:            roleName,
		RolePermissions: overrides,
	}, role)
}

func TestPrincipal_SuperAdminBypassesEveryCheck(t *testing.T) {
	role := &Role{Name: RoleSuperAdmin, Level: 10, IsActive: true}
	p := principalFor(RoleSuperAdmin, role)

	if !p.HasPermission("some.permission.never.granted") {
		t.Fatalf("superadmin must pass any single permission check")
	}
	if !p.HasAnyPermission("a", "b") || !p.HasAllPermissions("a", "b", "c") {
		t.Fatalf("superadmin must pass any/all permission checks")
	}
	if !p.IsAdmin() || !p.IsSubAdmin() || !p.IsAdminTier() {
		t.Fatalf("superadmin must clear every tier gate")
	}
}

func TestPrincipal_PermissionSetUnionsUserOverrides(t *testing.T) {
	role := &Role{
		Name:        RoleAgent,
		Level:       5,
		Permissions: []string{"properties.view", "properties.create"},
		IsActive:    true,
	}
	p := principalFor(RoleAgent, role, "reports.view", "properties.view")

	for _, perm := range []string{"properties.view", "properties.create", "reports.view"} {
		if !p.HasPermission(perm) {
			t.Fatalf("expected permission %s", perm)
		}
	}
	if p.HasPermission("users.delete") {
		t.Fatalf("unexpected permission users.delete")
	}
	// The duplicate override must not appear twice in the flattened list.
	if len(p.Permissions) != 3 {
		t.Fatalf("expected 3 deduplicated permissions, got %v", p.Permissions)
	}

	if !p.HasAnyPermission("users.delete", "reports.view") {
		t.Fatalf("any-check should pass on the override")
	}
	if p.HasAllPermissions("properties.view", "users.delete") {
		t.Fatalf("all-check must fail when one token is missing")
	}
}

func TestPrincipal_IsAdminTierDenyList(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{RoleCustomer, false},
		{RoleAgent, false},
		{RoleVendor, false},
		{RoleBuilder, false},
		{"Agent", false}, // classification normalizes case
		{RoleSubAdmin, true},
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{"content_moderator", true}, // unknown names land on the admin side
	}
	for _, tc := range cases {
		p := principalFor(tc.role, &Role{Name: NormalizeRoleName(tc.role), Level: 3, IsActive: true})
		if got := p.IsAdminTier(); got != tc.want {
			t.Fatalf("role %q: IsAdminTier = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestPrincipal_AtLeastLevel_CanonicalNamesIgnoreLevel(t *testing.T) {
	// A canonical role passes a threshold gate only when named in the allow
	// list, no matter how high its document level is.
	agent := principalFor(RoleAgent, &Role{Name: RoleAgent, Level: 10, IsActive: true})
	if agent.AtLeastLevel(8, RoleAdmin, RoleSuperAdmin) {
		t.Fatalf("agent must not clear the admin gate on level alone")
	}
	if agent.IsAdmin() || agent.IsSubAdmin() {
		t.Fatalf("agent clears no admin-tier gate")
	}

	admin := principalFor(RoleAdmin, &Role{Name: RoleAdmin, Level: 1, IsActive: true})
	if !admin.IsAdmin() {
		t.Fatalf("admin passes by name regardless of document level")
	}
}

func TestPrincipal_AtLeastLevel_CustomRolesPassOnLevel(t *testing.T) {
	high := principalFor("ops_lead", &Role{Name: "ops_lead", Level: 8, IsActive: true})
	if !high.IsAdmin() || !high.IsSubAdmin() {
		t.Fatalf("custom role at level 8 must clear both admin gates")
	}

	mid := principalFor("support_agent", &Role{Name: "support_agent", Level: 7, IsActive: true})
	if mid.IsAdmin() {
		t.Fatalf("level 7 must not clear the admin gate")
	}
	if !mid.IsSubAdmin() {
		t.Fatalf("level 7 clears the subadmin gate")
	}

	low := principalFor("support_agent", &Role{Name: "support_agent", Level: 6, IsActive: true})
	if low.IsAdmin() || low.IsSubAdmin() {
		t.Fatalf("level 6 clears neither gate")
	}
}

// A support_agent at level 6 with ticket permissions: admin-tier for menu
// classification, granted its own permissions, but below both numeric gates.
func TestPrincipal_CustomSupportAgentScenario(t *testing.T) {
	role := &Role{
		Name:        "support_agent",
		Level:       6,
		Permissions: []string{"supportTickets.read", "supportTickets.reply"},
		Pages:       []string{"tickets"},
		IsActive:    true,
	}
	p := principalFor("support_agent", role)

	if !p.IsAdminTier() {
		t.Fatalf("custom roles classify as admin-tier")
	}
	if !p.HasPermission("supportTickets.read") || p.HasPermission("roles.manage") {
		t.Fatalf("permission set must match the role document exactly")
	}
	if p.IsAdmin() || p.IsSubAdmin() {
		t.Fatalf("level 6 must not clear the numeric gates")
	}
	if len(p.Pages()) != 1 || p.Pages()[0] != "tickets" {
		t.Fatalf("pages come from the role document, got %v", p.Pages())
	}
}

func TestPrincipal_NilRoleObject(t *testing.T) {
	// Role deleted after login: the principal survives with only the user's
	// own permission overrides.
	p := principalFor("ghost_role", nil, "reports.view")

	if !p.HasPermission("reports.view") {
		t.Fatalf("user overrides survive a deleted role")
	}
	if p.HasPermission("properties.view") {
		t.Fatalf("no role document, no role permissions")
	}
	if p.IsAdmin() || p.IsSubAdmin() {
		t.Fatalf("custom role without a document cannot clear level gates")
	}
	if p.Pages() != nil {
		t.Fatalf("expected nil pages, got %v", p.Pages())
	}
}
