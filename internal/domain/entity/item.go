package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item satu roti di katalog. CategoryID wajib menunjuk Category yang ada.
type Item struct {
	ID           string
	CategoryID   string
	Nama         string
	Deskripsi    string
	Harga        decimal.Decimal // harga jual, tidak boleh negatif
	Stok         int             // jumlah stok, tidak boleh negatif
	NamaKategori string          // diisi saat listing (join), bukan kolom daftar_roti
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
