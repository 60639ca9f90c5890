package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

// RoleService is the role lifecycle manager. Route-level guards decide WHO may
// call it; this service enforces only the domain invariants: system roles are
// protected, names are unique and case-normalized, levels stay in [1,10], and
// deleting a role cascades to its users.
type RoleService struct {
	roles ports.RoleRepository
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, audit: audit, log: log}
}

// EnsureSystemRoles seeds the four built-in roles. Idempotent: roles that
// already exist are left untouched, so admin edits to a system role survive
// restarts.
func (s *RoleService) EnsureSystemRoles(ctx context.Context) error {
	for _, seed := range domain.SystemRoles() {
		_, err := s.roles.FindByName(ctx, seed.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}

		now := time.Now().UTC()
		seed.IsSystemRole = true
		seed.IsActive = true
		seed.CreatedAt = now
		seed.UpdatedAt = now
		if _, err := s.roles.Create(ctx, &seed); err != nil {
			// Lost a seeding race with another instance.
			if errors.Is(err, domain.ErrDuplicateRole) {
				continue
			}
			return err
		}
		s.log.Info().Str("role", seed.Name).Msg("seeded system role")
	}
	return nil
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

// Create inserts a new custom role. Roles created here are never system roles;
// the built-ins are seeded once at bootstrap and this path cannot mint more.
func (s *RoleService) Create(ctx context.Context, actor *domain.Principal, input ports.CreateRoleInput) (*domain.Role, error) {
	name := domain.NormalizeRoleName(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidRoleName
	}
	// Canonical names are reserved even when, like "admin", no document is
	// seeded for them: guards compare those names literally, so a custom
	// role must never be able to claim one.
	if domain.IsCanonicalRole(name) {
		return nil, domain.ErrDuplicateRole
	}
	if input.Level < domain.MinRoleLevel || input.Level > domain.MaxRoleLevel {
		return nil, domain.ErrInvalidRoleLevel
	}

	now := time.Now().UTC()
	role := &domain.Role{
		Name:         name,
		Description:  input.Description,
		Level:        input.Level,
		Permissions:  input.Permissions,
		Pages:        input.Pages,
		IsSystemRole: false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditRoleCreate, created.Name, "")
	s.log.Info().Str("role", created.Name).Int("level", created.Level).Msg("custom role created")
	return created, nil
}

// Update applies a partial patch. Editing a system role requires the acting
// principal to be exactly superadmin.
func (s *RoleService) Update(ctx context.Context, actor *domain.Principal, id string, patch ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystemRole && !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	if patch.Description != nil {
		role.Description = *patch.Description
	}
	if patch.Level != nil {
		if *patch.Level < domain.MinRoleLevel || *patch.Level > domain.MaxRoleLevel {
			return nil, domain.ErrInvalidRoleLevel
		}
		role.Level = *patch.Level
	}
	if patch.Permissions != nil {
		role.Permissions = patch.Permissions
	}
	if patch.Pages != nil {
		role.Pages = patch.Pages
	}
	role.UpdatedAt = time.Now().UTC()

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditRoleUpdate, role.Name, "")
	s.log.Info().Str("role", role.Name).Msg("role updated")
	return role, nil
}

// ToggleActive flips a role's active flag. Deactivating a currently-active
// system role requires superadmin; re-activating one, or toggling any custom
// role, carries no extra restriction beyond the route-level guard.
func (s *RoleService) ToggleActive(ctx context.Context, actor *domain.Principal, id string) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystemRole && role.IsActive && !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	role.IsActive = !role.IsActive
	role.UpdatedAt = time.Now().UTC()
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditRoleToggle, role.Name, "")
	s.log.Info().Str("role", role.Name).Bool("active", role.IsActive).Msg("role toggled")
	return role, nil
}

// Delete removes a custom role and cascade-deletes every user holding it.
// System roles can never be deleted, regardless of caller tier.
//
// The cascade is not atomic: mongo standalone deployments have no multi-
// document transactions, so dependent users are deleted first and the role
// document second. A crash in between leaves an orphaned-but-harmless role
// rather than users pointing at a nonexistent one.
func (s *RoleService) Delete(ctx context.Context, actor *domain.Principal, id string) (*ports.DeleteRoleResult, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystemRole {
		return nil, domain.ErrSystemRoleProtected
	}

	deleted, err := s.users.DeleteByRole(ctx, role.Name)
	if err != nil {
		return nil, err
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditRoleDelete, role.Name, "")
	s.log.Warn().
		Str("role", role.Name).
		Int64("users_deleted", deleted).
		Msg("role deleted with user cascade")

	return &ports.DeleteRoleResult{RoleName: role.Name, UsersDeleted: deleted}, nil
}

func (s *RoleService) recordAudit(actor *domain.Principal, action domain.AuditAction, target, detail string) {
	actorID := ""
	if actor != nil {
		actorID = actor.UserID
	}
	s.audit.Record(domain.AuditEntry{
		ActorID:   actorID,
		Action:    action,
		Target:    target,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
