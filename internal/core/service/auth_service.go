package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-attempt throttle (Redis).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login with role validation, and
// per-request principal resolution.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	limiter   LoginLimiter
	audit     ports.AuditRecorder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	limiter LoginLimiter,
	audit ports.AuditRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		roles:     roles,
		limiter:   limiter,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates a customer account. Elevated roles are only ever assigned
// by an administrator after the fact.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Status:       domain.StatusActive,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and validates the account's role before issuing
// a token. Role-not-found and role-inactive are surfaced as distinct errors so
// the handler can attach reason codes; this is the one place a dangling role
// reference is reported to the end user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if blocked, err := s.limiter.TooManyAttempts(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter check failed, proceeding")
	} else if blocked {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a bad password on purpose.
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status != domain.StatusActive {
		return nil, domain.ErrAccountInactive
	}

	role, err := s.roles.FindByName(ctx, user.Role)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRoleDeleted
		}
		return nil, err
	}
	if !role.IsActive {
		return nil, domain.ErrRoleInactive
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login limiter")
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:   user.ID,
		Action:    domain.AuditLogin,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return &ports.LoginResult{Token: token, User: user, Pages: role.Pages}, nil
}

// Resolve verifies the bearer token and builds the request principal. The
// user and role documents are loaded fresh on every call: a role edit takes
// effect on the very next request for every holder, without re-login.
//
// A role that was deleted or deactivated after login does NOT fail resolution;
// that check is deliberately login-time-only so admins can edit roles without
// forcing re-authentication for every holder.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	userID, err := s.verifyToken(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if user.Status != domain.StatusActive {
		return nil, domain.ErrUnauthenticated
	}

	role, err := s.roles.FindByName(ctx, user.Role)
	if err != nil {
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return nil, err
		}
		role = nil
	}

	return domain.NewPrincipal(user, role), nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) verifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrUnauthenticated
	}
	return sub, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
