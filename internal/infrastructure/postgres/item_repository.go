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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementasi port ItemRepository di atas PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository membuat adapter persistensi roti. Terima pool atau tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetAll mengambil semua roti berikut nama kategorinya, urut nama.
func (r *ItemRepo) GetAll(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT d.id, d.id_kategori, d.nama_roti, d.deskripsi, d.harga, d.stok,
		       k.nama_kategori, d.created_at, d.updated_at
		FROM daftar_roti d
		JOIN kategori_roti k ON k.id = d.id_kategori
		ORDER BY d.nama_roti`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roti: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Nama, &it.Deskripsi, &it.Harga, &it.Stok,
			&it.NamaKategori, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan roti: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByID mengambil satu roti berdasarkan ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		SELECT id, id_kategori, nama_roti, deskripsi, harga, stok, created_at, updated_at
		FROM daftar_roti WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.CategoryID, &it.Nama, &it.Deskripsi, &it.Harga, &it.Stok,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roti: %w", err)
	}
	return &it, nil
}

// Create menyimpan roti baru. ErrInvalidInput bila id_kategori tidak menunjuk kategori yang ada.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO daftar_roti (id, id_kategori, nama_roti, deskripsi, harga, stok, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.CategoryID, item.Nama, item.Deskripsi, item.Harga, item.Stok,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert roti: %w", err)
	}
	return nil
}

// Update memperbarui roti. ErrNotFound bila id tidak ada.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE daftar_roti SET id_kategori = $2, nama_roti = $3, deskripsi = $4, harga = $5, stok = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.CategoryID, item.Nama, item.Deskripsi, item.Harga, item.Stok, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update roti: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete menghapus roti berdasarkan ID. ErrNotFound bila id tidak ada.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM daftar_roti WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete roti: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByCategory menghitung roti yang masih menunjuk kategori tertentu.
func (r *ItemRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM daftar_roti WHERE id_kategori = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count roti per kategori: %w", err)
	}
	return n, nil
}
