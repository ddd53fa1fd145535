package handler

import (
	"time"

	"github.com/campusops/student-registry/internal/core/domain"
)

const dateLayout = "2006-01-02"

// --- Request types ---

type listStudentsRequest struct {
	Page  *int   `query:"page"  validate:"omitempty,gte=1"`
	Limit *int   `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Q     string `query:"q"`
}

type createStudentRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName"  validate:"required,min=1"`
	Carnet    string `json:"carnet"    validate:"required,min=3"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	IsActive  *bool  `json:"isActive"`
}

// updateStudentRequest has patch semantics: nil fields are left unchanged.
type updateStudentRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=1"`
	Carnet    *string `json:"carnet"    validate:"omitempty,min=3"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"isActive"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type studentResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Carnet    string    `json:"carnet"`
	BirthDate string    `json:"birthDate"` // calendar date, no time component
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type paginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type listStudentsResponse struct {
	Meta paginationResponse `json:"meta"`
	Data []studentResponse  `json:"data"`
}

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Carnet:    s.Carnet,
		BirthDate: s.BirthDate.Format(dateLayout),
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
