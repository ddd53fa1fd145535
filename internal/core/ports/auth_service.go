package ports

import (
	"context"
	"time"

	"github.com/campusops/student-registry/internal/core/domain"
)

// Claims is the verified payload of a bearer token.
type Claims struct {
	Sub      int64
	Username string
	Role     domain.Role
}

// LoginResult carries the issued token and its lifetime.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
