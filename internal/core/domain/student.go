package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrStudentNotFound = errors.New("student not found")
var ErrCarnetExists = errors.New("carnet already exists")

// Student is the managed resource. The carnet is the unique external
// identifier (enrollment number); IsActive is a plain data field and has no
// effect on lifecycle or listing.
type Student struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Carnet    string    `json:"carnet"`
	BirthDate time.Time `json:"birthDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
