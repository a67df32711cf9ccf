package repository

import (
	"context"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

// CategoryRepository port persistensi untuk Category.
// GetByID mengembalikan (nil, nil) bila tidak ada; Update/Delete mengembalikan
// domain.ErrNotFound bila id tidak ada (cek RowsAffected).
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
