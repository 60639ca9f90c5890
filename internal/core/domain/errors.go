package domain

import "errors"

// Authentication failures. All of these surface as a generic 401 so account
// state cannot be enumerated from the API; the login flow's reason codes are
// the one deliberate exception (see LoginReason).
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Authorization and role lifecycle failures.
var (
	ErrForbidden           = errors.New("access forbidden")
	ErrRoleNotFound        = errors.New("role not found")
	ErrDuplicateRole       = errors.New("role name already exists")
	ErrSystemRoleProtected = errors.New("system roles cannot be deleted")
	ErrRoleDeleted         = errors.New("role no longer exists")
	ErrRoleInactive        = errors.New("role is deactivated")
	ErrInvalidRoleName     = errors.New("role name must not be empty")
	ErrInvalidRoleLevel    = errors.New("role level must be between 1 and 10")
)

// User store failures.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)
