package storage

import (
	"context"
	"errors"

	"github.com/debduthira/valorant-prs/auth/users"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type AuthStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByName(ctx context.Context, name string) (users.User, error)
	GetUserSecret(ctx context.Context, name string) ([]byte, error)
	CreateUser(ctx context.Context, user users.User, passwordHash []byte) error
}
