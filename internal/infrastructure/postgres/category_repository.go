package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementasi port CategoryRepository di atas PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository membuat adapter persistensi kategori. Terima pool atau tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetAll mengambil semua kategori, urut nama.
func (r *CategoryRepo) GetAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, nama_kategori, deskripsi, created_at, updated_at
		FROM kategori_roti ORDER BY nama_kategori`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list kategori: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var k entity.Category
		if err := rows.Scan(&k.ID, &k.Nama, &k.Deskripsi, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kategori: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// GetByID mengambil satu kategori berdasarkan ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, nama_kategori, deskripsi, created_at, updated_at
		FROM kategori_roti WHERE id = $1`
	var k entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&k.ID, &k.Nama, &k.Deskripsi, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kategori: %w", err)
	}
	return &k, nil
}

// Create menyimpan kategori baru.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO kategori_roti (id, nama_kategori, deskripsi, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Nama, category.Deskripsi, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kategori: %w", err)
	}
	return nil
}

// Update memperbarui kategori. ErrNotFound bila id tidak ada.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE kategori_roti SET nama_kategori = $2, deskripsi = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID, category.Nama, category.Deskripsi, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kategori: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete menghapus kategori berdasarkan ID. ErrNotFound bila id tidak ada,
// ErrConflict bila FK di database masih menahan (item masih menunjuk ke sini).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM kategori_roti WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete kategori: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
