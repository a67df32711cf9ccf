package repository

import (
	"context"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

// SessionStore port penyimpanan sesi login, dikunci token opaque milik client.
// Get mengembalikan (nil, nil) bila token tidak dikenal atau sesinya kedaluwarsa.
// Delete idempoten: menghapus token yang tidak ada bukan error.
type SessionStore interface {
	Put(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}
