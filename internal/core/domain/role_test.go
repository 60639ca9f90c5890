package domain

import "testing"

func TestNormalizeRoleName(t *testing.T) {
	cases := map[string]string{
		"Admin":        "admin",
		"  SuperAdmin": "superadmin",
		"agent ":       "agent",
		"Support_Agent": "support_agent",
		"":             "",
	}
	for in, want := range cases {
		if got := NormalizeRoleName(in); got != want {
			t.Fatalf("NormalizeRoleName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsCanonicalRole(t *testing.T) {
	for _, name := range []string{"customer", "agent", "subadmin", "Admin", "SUPERADMIN"} {
		if !IsCanonicalRole(name) {
			t.Fatalf("%q should be canonical", name)
		}
	}
	// vendor and builder classify as end-user roles but are not part of the
	// name allow-lists used by the level gates.
	for _, name := range []string{"vendor", "builder", "support_agent", ""} {
		if IsCanonicalRole(name) {
			t.Fatalf("%q should not be canonical", name)
		}
	}
}

func TestSystemRoles_Catalog(t *testing.T) {
	seeds := SystemRoles()
	if len(seeds) != 4 {
		t.Fatalf("expected 4 seeded roles, got %d", len(seeds))
	}

	levels := map[string]int{
		RoleCustomer:   1,
		RoleAgent:      5,
		RoleSubAdmin:   7,
		RoleSuperAdmin: 10,
	}
	for _, seed := range seeds {
		want, ok := levels[seed.Name]
		if !ok {
			t.Fatalf("unexpected seeded role %q", seed.Name)
		}
		if seed.Level != want {
			t.Fatalf("role %s: level %d, want %d", seed.Name, seed.Level, want)
		}
		if seed.Level < MinRoleLevel || seed.Level > MaxRoleLevel {
			t.Fatalf("role %s: level %d outside bounds", seed.Name, seed.Level)
		}
		if len(seed.Permissions) == 0 || len(seed.Pages) == 0 {
			t.Fatalf("role %s: missing permissions or pages", seed.Name)
		}
	}
}

func TestRole_HasPermission(t *testing.T) {
	r := &Role{Permissions: []string{"properties.view", "enquiries.create"}}
	if !r.HasPermission("enquiries.create") {
		t.Fatalf("expected permission present")
	}
	if r.HasPermission("users.delete") {
		t.Fatalf("unexpected permission")
	}
}
