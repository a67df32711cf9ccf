package repository

import (
	"context"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

// ItemRepository port persistensi untuk Item.
// Konvensi error sama dengan CategoryRepository. CountByCategory dipakai untuk
// menahan penghapusan kategori yang masih punya item.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
