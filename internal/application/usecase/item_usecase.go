package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

// ItemUseCase CRUD daftar roti. Validasi hanya koersi numerik + integritas
// referensial ke kategori; selebihnya urusan pemanggil.
type ItemUseCase struct {
	repo    repository.ItemRepository
	catRepo repository.CategoryRepository
}

// NewItemUseCase membuat use case roti.
func NewItemUseCase(repo repository.ItemRepository, catRepo repository.CategoryRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, catRepo: catRepo}
}

// GetAll mengambil semua roti terurut berikut nama kategorinya.
func (uc *ItemUseCase) GetAll(ctx context.Context) ([]*entity.Item, error) {
	return uc.repo.GetAll(ctx)
}

// GetByID mengambil satu roti. ErrNotFound bila tidak ada.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create membuat roti baru. Harga/stok malformed atau negatif, maupun kategori
// yang tidak ada, semuanya jadi ErrInvalidInput generik.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*entity.Item, error) {
	fields, err := uc.coerce(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		ID:         uuid.NewString(),
		CategoryID: in.CategoryID,
		Nama:       in.Nama,
		Deskripsi:  in.Deskripsi,
		Harga:      fields.harga,
		Stok:       fields.stok,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update memperbarui roti. ErrNotFound bila id tidak ada; store tidak berubah.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.ItemRequest) (*entity.Item, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	fields, err := uc.coerce(ctx, in)
	if err != nil {
		return nil, err
	}
	item.CategoryID = in.CategoryID
	item.Nama = in.Nama
	item.Deskripsi = in.Deskripsi
	item.Harga = fields.harga
	item.Stok = fields.stok
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete menghapus roti tanpa syarat. ErrNotFound bila id tidak ada.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

type coercedFields struct {
	harga decimal.Decimal
	stok  int
}

// coerce mengubah field form ke tipe numerik dan memeriksa kategori tujuan ada.
// Semua kegagalan dilaporkan sebagai satu ErrInvalidInput generik.
func (uc *ItemUseCase) coerce(ctx context.Context, in dto.ItemRequest) (coercedFields, error) {
	var out coercedFields
	if in.Nama == "" || in.CategoryID == "" {
		return out, domain.ErrInvalidInput
	}
	harga, err := decimal.NewFromString(strings.TrimSpace(in.Harga))
	if err != nil || harga.IsNegative() {
		return out, domain.ErrInvalidInput
	}
	stok, err := strconv.Atoi(strings.TrimSpace(in.Stok))
	if err != nil || stok < 0 {
		return out, domain.ErrInvalidInput
	}
	category, err := uc.catRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return out, err
	}
	if category == nil {
		return out, domain.ErrInvalidInput
	}
	out.harga = harga
	out.stok = stok
	return out, nil
}
