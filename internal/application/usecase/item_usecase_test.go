package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

func kategoriTersimpan(id string) *entity.Category {
	return &entity.Category{ID: id, Nama: "Roti Manis", CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func TestItemCreate_Sukses_KoersiHargaDanStok(t *testing.T) {
	itemRepo := new(MockItemRepository)
	catRepo := new(MockCategoryRepository)
	uc := usecase.NewItemUseCase(itemRepo, catRepo)

	catRepo.On("GetByID", mock.Anything, "kat-1").Return(kategoriTersimpan("kat-1"), nil)
	itemRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Item")).Return(nil)

	out, err := uc.Create(context.Background(), dto.ItemRequest{
		CategoryID: "kat-1",
		Nama:       "Donat",
		Deskripsi:  "Donat gula",
		Harga:      "1.50",
		Stok:       "20",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Harga.Equal(decimal.RequireFromString("1.50")), "harga = %s", out.Harga)
	assert.Equal(t, 20, out.Stok)
	assert.Equal(t, "kat-1", out.CategoryID)
	itemRepo.AssertCalled(t, "Create", mock.Anything, out)
}

func TestItemCreate_AngkaTidakValid(t *testing.T) {
	cases := []struct {
		name  string
		harga string
		stok  string
	}{
		{"harga bukan angka", "abc", "5"},
		{"harga negatif", "-1.00", "5"},
		{"stok bukan angka", "2.00", "banyak"},
		{"stok negatif", "2.00", "-3"},
		{"stok pecahan", "2.00", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			itemRepo := new(MockItemRepository)
			catRepo := new(MockCategoryRepository)
			uc := usecase.NewItemUseCase(itemRepo, catRepo)

			_, err := uc.Create(context.Background(), dto.ItemRequest{
				CategoryID: "kat-1", Nama: "Donat", Harga: tc.harga, Stok: tc.stok,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestItemCreate_KategoriTidakAda(t *testing.T) {
	itemRepo := new(MockItemRepository)
	catRepo := new(MockCategoryRepository)
	uc := usecase.NewItemUseCase(itemRepo, catRepo)

	catRepo.On("GetByID", mock.Anything, "hilang").Return(nil, nil)

	_, err := uc.Create(context.Background(), dto.ItemRequest{
		CategoryID: "hilang", Nama: "Donat", Harga: "1.00", Stok: "1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestItemUpdate_IDTidakAda_StoreTidakBerubah(t *testing.T) {
	itemRepo := new(MockItemRepository)
	catRepo := new(MockCategoryRepository)
	uc := usecase.NewItemUseCase(itemRepo, catRepo)

	itemRepo.On("GetByID", mock.Anything, "hilang").Return(nil, nil)

	_, err := uc.Update(context.Background(), "hilang", dto.ItemRequest{
		CategoryID: "kat-1", Nama: "Donat", Harga: "1.00", Stok: "1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemUpdate_Sukses(t *testing.T) {
	itemRepo := new(MockItemRepository)
	catRepo := new(MockCategoryRepository)
	uc := usecase.NewItemUseCase(itemRepo, catRepo)

	existing := &entity.Item{
		ID:         "roti-1",
		CategoryID: "kat-1",
		Nama:       "Donat",
		Harga:      decimal.RequireFromString("1.00"),
		Stok:       5,
	}
	itemRepo.On("GetByID", mock.Anything, "roti-1").Return(existing, nil)
	catRepo.On("GetByID", mock.Anything, "kat-2").Return(kategoriTersimpan("kat-2"), nil)
	itemRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Item")).Return(nil)

	out, err := uc.Update(context.Background(), "roti-1", dto.ItemRequest{
		CategoryID: "kat-2", Nama: "Donat Coklat", Deskripsi: "baru", Harga: "2.25", Stok: "8",
	})
	require.NoError(t, err)

	assert.Equal(t, "roti-1", out.ID)
	assert.Equal(t, "kat-2", out.CategoryID)
	assert.Equal(t, "Donat Coklat", out.Nama)
	assert.True(t, out.Harga.Equal(decimal.RequireFromString("2.25")))
	assert.Equal(t, 8, out.Stok)
}

func TestItemGetByID_TidakAda(t *testing.T) {
	itemRepo := new(MockItemRepository)
	uc := usecase.NewItemUseCase(itemRepo, new(MockCategoryRepository))

	itemRepo.On("GetByID", mock.Anything, "hilang").Return(nil, nil)

	_, err := uc.GetByID(context.Background(), "hilang")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemDelete_DiteruskanKeRepo(t *testing.T) {
	itemRepo := new(MockItemRepository)
	uc := usecase.NewItemUseCase(itemRepo, new(MockCategoryRepository))

	itemRepo.On("Delete", mock.Anything, "roti-1").Return(nil)
	itemRepo.On("Delete", mock.Anything, "hilang").Return(domain.ErrNotFound)

	assert.NoError(t, uc.Delete(context.Background(), "roti-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "hilang"), domain.ErrNotFound)
}
