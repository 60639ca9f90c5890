package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// LoginReason is the machine-readable code attached to a rejected login so
// client UIs can distinguish "bad password" from "role removed". These codes
// are a deliberate exception to the otherwise generic 401 policy.
type LoginReason string

const (
	ReasonInvalidCredentials LoginReason = "invalid_credentials"
	ReasonAccountInactive    LoginReason = "account_inactive"
	ReasonRoleDeleted        LoginReason = "role_deleted"
	ReasonRoleInactive       LoginReason = "role_inactive"
	ReasonRateLimited        LoginReason = "rate_limited"
)

// LoginResult is returned on a successful login. Pages is the role's visible
// page list, attached for client-side navigation only.
type LoginResult struct {
	Token string
	User  *domain.User
	Pages []string
}

// AuthService covers registration, login, and per-request principal
// resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Resolve verifies a bearer token and builds the request principal,
	// re-fetching the user and role documents on every call.
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

// PrincipalResolver is the narrow interface the auth middleware depends on.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}
