package user

import (
	"net/http"
	"time"

	"hotelbooking/internal/pkg/apperror"
)

// Roles a user can hold.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already in use")
	ErrEmailTaken         = apperror.New(http.StatusConflict, "email already in use")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "role must be USER or ADMIN")
	ErrEmptyUsername      = apperror.New(http.StatusBadRequest, "username cannot be empty")
	ErrEmptyEmail         = apperror.New(http.StatusBadRequest, "email cannot be empty")
	ErrWeakPassword       = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
