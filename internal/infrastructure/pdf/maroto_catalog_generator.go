// Package pdf membangun PDF daftar harga katalog (satu halaman per muatan,
// dikelompokkan per kategori) memakai Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/farhanzaidann/paw-12/internal/application/report"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 60, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementasi report.CatalogPDFGenerator memakai Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator membuat generator.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF menghasilkan PDF daftar harga dan mengembalikan byte-nya.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	categories []*entity.Category,
	items []*entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Daftar Harga Toko Roti", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Kelompokkan roti per kategori, dengan urutan kategori dari store.
	byCategory := make(map[string][]*entity.Item, len(categories))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	for _, k := range categories {
		m.AddRows(categoryRow(k))
		m.AddRows(tableHeaderRow())
		rotis := byCategory[k.ID]
		if len(rotis) == 0 {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New("(belum ada roti)", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
			)))
			continue
		}
		for _, it := range rotis {
			m.AddRows(itemRow(it))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate dokumen: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: judul laporan + tanggal cetak.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("DAFTAR HARGA TOKO ROTI", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Dicetak: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// categoryRow: nama kategori sebagai sub-judul.
func categoryRow(k *entity.Category) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(k.Nama, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: kepala tabel roti.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Roti", 5, align.Left),
		h("Deskripsi", 4, align.Left),
		h("Harga", 2, align.Right),
		h("Stok", 1, align.Right),
	)
}

// itemRow: satu baris roti.
func itemRow(it *entity.Item) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(it.Nama, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(it.Deskripsi, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New("Rp "+it.Harga.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Stok), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}
