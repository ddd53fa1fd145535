package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-registry/internal/core/ports"
)

// StudentHandler handles HTTP requests for student operations. Admin gating
// happens in middleware before any of the mutating handlers run.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /api/students with pagination and free-text search.
func (h *StudentHandler) List(c echo.Context) error {
	var req listStudentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, limit := 1, 10
	if req.Page != nil {
		page = *req.Page
	}
	if req.Limit != nil {
		limit = *req.Limit
	}

	result, err := h.service.ListStudents(c.Request().Context(), ports.ListStudentsInput{
		Page:   page,
		Limit:  limit,
		Search: req.Q,
	})
	if err != nil {
		return err
	}

	data := make([]studentResponse, 0, len(result.Items))
	for _, s := range result.Items {
		data = append(data, toStudentResponse(s))
	}

	return c.JSON(http.StatusOK, listStudentsResponse{
		Meta: paginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Data: data,
	})
}

// Get handles GET /api/students/:id.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return err
	}

	student, err := h.service.GetStudent(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Create handles POST /api/students (admin only).
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, _ := time.Parse(dateLayout, req.BirthDate)

	student, err := h.service.CreateStudent(c.Request().Context(), ports.CreateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Carnet:    req.Carnet,
		BirthDate: birthDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toStudentResponse(student))
}

// Update handles PUT /api/students/:id (admin only) with patch semantics.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Carnet:    req.Carnet,
		IsActive:  req.IsActive,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse(dateLayout, *req.BirthDate)
		input.BirthDate = &birthDate
	}

	student, err := h.service.UpdateStudent(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Delete handles DELETE /api/students/:id (admin only). Deletion is
// immediate and irreversible.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteStudent(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func studentID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
