package ports

import (
	"context"
	"time"

	"github.com/campusops/student-registry/internal/core/domain"
)

// CreateStudentInput carries all data needed to create a new student.
type CreateStudentInput struct {
	FirstName string
	LastName  string
	Carnet    string
	BirthDate time.Time
	IsActive  *bool // nil defaults to true
}

// UpdateStudentInput carries a partial update; nil fields are left unchanged.
type UpdateStudentInput struct {
	FirstName *string
	LastName  *string
	Carnet    *string
	BirthDate *time.Time
	IsActive  *bool
}

// ListStudentsInput carries all parameters for the list endpoint.
type ListStudentsInput struct {
	Page   int
	Limit  int
	Search string
}

// ListStudentsResult is returned by ListStudents.
type ListStudentsResult struct {
	Items      []*domain.Student
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// StudentService defines use-case operations for students.
type StudentService interface {
	CreateStudent(ctx context.Context, input CreateStudentInput) (*domain.Student, error)
	GetStudent(ctx context.Context, id int64) (*domain.Student, error)
	ListStudents(ctx context.Context, input ListStudentsInput) (*ListStudentsResult, error)
	UpdateStudent(ctx context.Context, id int64, input UpdateStudentInput) (*domain.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}
