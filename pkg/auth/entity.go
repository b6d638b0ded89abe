package auth

import (
	"github.com/google/uuid"
)

// User is an account allowed to call administrative endpoints.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
}
