package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

// CatalogTxRunner menjalankan fn dengan repo katalog yang terikat ke satu transaksi.
// Implementasinya postgres.TxRunner; interface di sini menghindari import terbalik.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// CategoryUseCase CRUD kategori roti.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   CatalogTxRunner
}

// NewCategoryUseCase membuat use case kategori.
func NewCategoryUseCase(repo repository.CategoryRepository, tx CatalogTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// GetAll mengambil semua kategori terurut.
func (uc *CategoryUseCase) GetAll(ctx context.Context) ([]*entity.Category, error) {
	return uc.repo.GetAll(ctx)
}

// GetByID mengambil satu kategori. ErrNotFound bila tidak ada.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// Create membuat kategori baru dan mengembalikan entitasnya (berikut ID baru).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*entity.Category, error) {
	if in.Nama == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.NewString(),
		Nama:      in.Nama,
		Deskripsi: in.Deskripsi,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update memperbarui kategori. ErrNotFound bila id tidak ada; store tidak berubah.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*entity.Category, error) {
	if in.Nama == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Nama = in.Nama
	category.Deskripsi = in.Deskripsi
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete menghapus kategori. Kategori yang masih punya roti TIDAK dihapus:
// hitung dan hapus berjalan dalam satu transaksi, dan bila masih ada roti yang
// menunjuk ke kategori itu kembalikan ErrConflict tanpa mutasi apa pun.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(catRepo repository.CategoryRepository, itemRepo repository.ItemRepository) error {
		n, err := itemRepo.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		return catRepo.Delete(ctx, id)
	})
}
