package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusops/student-registry/internal/api/metrics"
	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// StudentService implements the student use cases: creation and updates with
// carnet uniqueness, paginated/searchable listing, and deletion.
type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

func (s *StudentService) CreateStudent(ctx context.Context, input ports.CreateStudentInput) (*domain.Student, error) {
	if err := s.ensureCarnetFree(ctx, input.Carnet); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	student := &domain.Student{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Carnet:    input.Carnet,
		BirthDate: input.BirthDate,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	metrics.StudentsCreatedTotal.Inc()
	s.logger.Info().Int64("id", created.ID).Str("carnet", created.Carnet).Msg("student created")
	return created, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) ListStudents(ctx context.Context, input ports.ListStudentsInput) (*ports.ListStudentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListStudentsFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListStudentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id int64, input ports.UpdateStudentInput) (*domain.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Carnet != nil && *input.Carnet != student.Carnet {
		if err := s.ensureCarnetFree(ctx, *input.Carnet); err != nil {
			return nil, err
		}
		student.Carnet = *input.Carnet
	}
	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.BirthDate != nil {
		student.BirthDate = *input.BirthDate
	}
	if input.IsActive != nil {
		student.IsActive = *input.IsActive
	}
	student.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, student)
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("student deleted")
	return nil
}

// ensureCarnetFree is the advisory pre-check; the unique constraint on carnet
// remains the authoritative guard under concurrent writes.
func (s *StudentService) ensureCarnetFree(ctx context.Context, carnet string) error {
	_, err := s.repo.FindByCarnet(ctx, carnet)
	if err == nil {
		return domain.ErrCarnetExists
	}
	if errors.Is(err, domain.ErrStudentNotFound) {
		return nil
	}
	return err
}
