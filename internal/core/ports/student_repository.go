package ports

import (
	"context"

	"github.com/campusops/student-registry/internal/core/domain"
)

// ListStudentsFilter carries all query parameters for listing students.
type ListStudentsFilter struct {
	Search string // optional: case-insensitive substring match on first name, last name, or carnet
	Page   int    // 1-based
	Limit  int    // max rows per page
}

// StudentRepository defines persistence operations for students.
// Create and Update must surface the storage-level unique constraint on
// carnet as domain.ErrCarnetExists.
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	FindByCarnet(ctx context.Context, carnet string) (*domain.Student, error)
	// List returns a page of students ordered by id ascending and the total
	// count over the full filtered set.
	List(ctx context.Context, filter ListStudentsFilter) ([]*domain.Student, int64, error)
	Update(ctx context.Context, s *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}
