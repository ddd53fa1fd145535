package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			if username != "alice" || password != "secret1" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{ID: 3, Username: username, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret1","role":"admin"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) || resp["username"] != "alice" || resp["role"] != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["passwordHash"]; ok {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("service should not be called on invalid input")
			return nil, nil
		},
	})

	// Username too short, password too short, role outside the enum.
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"ab","password":"123","role":"root"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %+v", len(ve.Fields), ve.Fields)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"bob","password":"secret1"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{AccessToken: "tok123", TokenType: "Bearer", ExpiresIn: 24 * time.Hour}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "tok123" || resp["tokenType"] != "Bearer" || resp["expiresIn"] != float64(86400) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("sub", int64(9))
	c.Set("username", "alice")
	c.Set("role", "user")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["sub"] != float64(9) || resp["username"] != "alice" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
