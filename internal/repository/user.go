package repository

import (
	"context"

	"blog-platform/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Create must enforce username uniqueness at the storage layer so that
// concurrent registrations with the same username cannot both succeed.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
