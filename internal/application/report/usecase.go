package report

import (
	"context"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

// CatalogPDFGenerator port pembuat PDF daftar harga; implementasinya di infrastructure/pdf.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, categories []*entity.Category, items []*entity.Item) ([]byte, error)
}

// CatalogReportUseCase menyusun laporan daftar harga katalog dalam bentuk PDF.
type CatalogReportUseCase struct {
	catRepo  repository.CategoryRepository
	itemRepo repository.ItemRepository
	gen      CatalogPDFGenerator
}

// NewCatalogReportUseCase membuat use case laporan.
func NewCatalogReportUseCase(catRepo repository.CategoryRepository, itemRepo repository.ItemRepository, gen CatalogPDFGenerator) *CatalogReportUseCase {
	return &CatalogReportUseCase{catRepo: catRepo, itemRepo: itemRepo, gen: gen}
}

// CatalogPDF mengambil seluruh katalog lalu menyerahkannya ke generator.
func (uc *CatalogReportUseCase) CatalogPDF(ctx context.Context) ([]byte, error) {
	categories, err := uc.catRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateCatalogPDF(ctx, categories, items)
}
