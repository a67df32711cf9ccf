package repository

import (
	"context"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

// UserRepository port persistensi untuk User.
// GetByID/GetByUsername mengembalikan (nil, nil) bila tidak ada barisnya.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
