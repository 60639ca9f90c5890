package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// In-memory fakes for the ports interfaces, shared by the service tests.

type stubRoleRepo struct {
	mu     sync.Mutex
	roles  map[string]*domain.Role // by id
	nextID int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (s *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roles {
		if existing.Name == role.Name {
			return nil, domain.ErrDuplicateRole
		}
	}
	s.nextID++
	copy := cloneRole(role)
	copy.ID = fmt.Sprintf("role_%d", s.nextID)
	s.roles[copy.ID] = cloneRole(copy)
	return copy, nil
}

func (s *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.roles[id]; ok {
		return cloneRole(r), nil
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = domain.NormalizeRoleName(name)
	for _, r := range s.roles {
		if r.Name == name {
			return cloneRole(r), nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, *cloneRole(r))
	}
	return out, nil
}

func (s *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	s.roles[role.ID] = cloneRole(role)
	return nil
}

func (s *stubRoleRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(s.roles, id)
	return nil
}

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	s.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", s.nextID)
	s.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) DeleteByRole(_ context.Context, roleName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roleName = domain.NormalizeRoleName(roleName)
	var n int64
	for id, u := range s.users {
		if u.Role == roleName {
			delete(s.users, id)
			n++
		}
	}
	return n, nil
}

func (s *stubUserRepo) CountByRole(_ context.Context, roleName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roleName = domain.NormalizeRoleName(roleName)
	var n int64
	for _, u := range s.users {
		if u.Role == roleName {
			n++
		}
	}
	return n, nil
}

type stubLimiter struct {
	mu       sync.Mutex
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (s *stubLimiter) TooManyAttempts(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max <= 0 {
		return false, nil
	}
	return s.failures[email] >= s.max, nil
}

func (s *stubLimiter) RecordFailure(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[email]++
	return nil
}

func (s *stubLimiter) Reset(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, email)
	return nil
}

type stubAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *stubAudit) Record(entry domain.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *stubAudit) actions() []domain.AuditAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Action)
	}
	return out
}
