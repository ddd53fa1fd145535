package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusops/student-registry/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = r.nextID
	r.nextID++
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "bob", "secret1", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob", "secret1", "superuser"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob", "secret1", domain.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "secret2", domain.RoleUser); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "carol", "s3cret99", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.TokenType != "Bearer" {
		t.Fatalf("unexpected token type: %s", result.TokenType)
	}
	if result.ExpiresIn != time.Hour {
		t.Fatalf("unexpected ttl: %v", result.ExpiresIn)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if int64(claims["sub"].(float64)) != registered.ID {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["username"] != "carol" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dave", "correct1", domain.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Both failure causes collapse to the same error so callers cannot
	// enumerate usernames.
	if _, err := svc.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestAuthService_Login_TokenExpiry(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Nanosecond)

	if _, err := svc.Register(context.Background(), "eve", "secret1", domain.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "eve", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	_, err = jwt.ParseWithClaims(result.AccessToken, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}
