package ports

import (
	"context"

	"github.com/campusops/student-registry/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface the storage-level unique constraint on username as
// domain.ErrUserExists; the service-level existence check is advisory only.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
