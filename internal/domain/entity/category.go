package entity

import "time"

// Category kategori roti di katalog.
type Category struct {
	ID        string
	Nama      string
	Deskripsi string
	CreatedAt time.Time
	UpdatedAt time.Time
}
