package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error
	registered  *domain.User
	registerErr error
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if s.registered != nil {
		return s.registered, nil
	}
	return &domain.User{ID: "user_1", Name: name, Email: email, Role: domain.RoleCustomer, Status: domain.StatusActive}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) Resolve(_ context.Context, _ string) (*domain.Principal, error) {
	return nil, domain.ErrUnauthenticated
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{
		Token: "signed.jwt.token",
		User:  &domain.User{ID: "user_1", Email: "a@example.com", Role: domain.RoleAgent, Status: domain.StatusActive},
		Pages: []string{"home", "my-properties"},
	}}
	h := NewAuthHandler(svc)

	c, rec := postJSON(newTestEcho(), "/v1/auth/login", `{"email":"a@example.com","password":"hunter22"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.User.Role != "agent" || len(resp.Pages) != 2 {
		t.Fatalf("user or pages missing: %+v", resp)
	}
}

func TestAuthHandler_Login_ReasonCodes(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{domain.ErrAccountInactive, http.StatusUnauthorized, "account_inactive"},
		{domain.ErrRoleDeleted, http.StatusUnauthorized, "role_deleted"},
		{domain.ErrRoleInactive, http.StatusUnauthorized, "role_inactive"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "rate_limited"},
	}
	for _, tc := range cases {
		h := NewAuthHandler(&stubAuthService{loginErr: tc.err})
		c, rec := postJSON(newTestEcho(), "/v1/auth/login", `{"email":"a@example.com","password":"hunter22"}`)
		if err := h.Login(c); err != nil {
			t.Fatalf("%v: rejection must be written, not returned: %v", tc.err, err)
		}
		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.wantStatus, rec.Code)
		}

		var resp loginFailureResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Success || resp.Reason != tc.wantReason {
			t.Fatalf("%v: unexpected envelope %+v", tc.err, resp)
		}
	}
}

func TestAuthHandler_Login_ValidatesPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{"password":"hunter22"}`,
		`{"email":"not-an-email","password":"hunter22"}`,
		`{"email":"a@example.com"}`,
	} {
		c, _ := postJSON(newTestEcho(), "/v1/auth/login", body)
		err := h.Login(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := postJSON(newTestEcho(), "/v1/auth/register", `{"name":"Ada","email":"ada@example.com","password":"longenough"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != domain.RoleCustomer {
		t.Fatalf("new accounts start as customer, got %s", resp.User.Role)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := postJSON(newTestEcho(), "/v1/auth/register", `{"email":"ada@example.com","password":"short"}`)
	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, _ := postJSON(newTestEcho(), "/v1/auth/register", `{"email":"ada@example.com","password":"longenough"}`)
	// The sentinel passes through for the central error handler to map to 409.
	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := domain.NewPrincipal(
		&domain.User{ID: "user_7", Email: "sub@example.com", Role: domain.RoleSubAdmin},
		&domain.Role{Name: domain.RoleSubAdmin, Level: 7, Permissions: []string{"users.view"}, Pages: []string{"dashboard"}, IsActive: true},
	)
	c.Set("principal", principal)

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}

	var resp meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != "subadmin" || resp.Level != 7 || !resp.AdminTier {
		t.Fatalf("unexpected principal view: %+v", resp)
	}
}

func TestAuthHandler_Me_NoPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil), httptest.NewRecorder())

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %v", err)
	}
}
