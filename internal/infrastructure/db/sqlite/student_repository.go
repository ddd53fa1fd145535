package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/ports"
)

// StudentRepository is the SQLite implementation of ports.StudentRepository.
type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = "id, first_name, last_name, carnet, birth_date, is_active, created_at, updated_at"

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO students (first_name, last_name, carnet, birth_date, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.FirstName, s.LastName, s.Carnet, s.BirthDate, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, asConstraintError(err, domain.ErrCarnetExists)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	created := *s
	created.ID = id
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	return scanStudent(row)
}

func (r *StudentRepository) FindByCarnet(ctx context.Context, carnet string) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE carnet = ?`, carnet)
	return scanStudent(row)
}

// List returns one page ordered by id ascending plus the total count over the
// full filtered set. Search matches first name, last name, or carnet as a
// substring; SQLite LIKE is case-insensitive for ASCII, which fixes the
// search case policy.
func (r *StudentRepository) List(ctx context.Context, filter ports.ListStudentsFilter) ([]*domain.Student, int64, error) {
	where := ""
	args := []any{}
	if filter.Search != "" {
		where = ` WHERE first_name LIKE ? OR last_name LIKE ? OR carnet LIKE ?`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students`+where+` ORDER BY id ASC LIMIT ? OFFSET ?`,
		append(args, filter.Limit, offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]*domain.Student, 0, filter.Limit)
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Carnet, &s.BirthDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	return students, total, nil
}

func (r *StudentRepository) Update(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students
		 SET first_name = ?, last_name = ?, carnet = ?, birth_date = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		s.FirstName, s.LastName, s.Carnet, s.BirthDate, s.IsActive, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return nil, asConstraintError(err, domain.ErrCarnetExists)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrStudentNotFound
	}

	updated := *s
	return &updated, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if affected == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func scanStudent(row *sql.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Carnet, &s.BirthDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, notFound(err, domain.ErrStudentNotFound)
	}
	return &s, nil
}
