package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository looks up accounts by email.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
}

type staticUsers struct {
	admin User
}

// NewStaticAdmin serves the single administrator configured through the
// environment. An empty email or hash yields a repository with no users.
func NewStaticAdmin(email, passwordHash string) UserRepository {
	if email == "" || passwordHash == "" {
		return staticUsers{}
	}
	return staticUsers{admin: User{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+strings.ToLower(email))),
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}}
}

func (s staticUsers) GetByEmail(_ context.Context, email string) (User, error) {
	if s.admin.Email == "" || !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		return User{}, ErrNotFound
	}
	return s.admin, nil
}
