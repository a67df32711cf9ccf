package dto

// CategoryRequest input form kategori (insert dan update memakai field yang sama).
type CategoryRequest struct {
	Nama      string `form:"nama_kategori"`
	Deskripsi string `form:"deskripsi"`
}

// ItemRequest input form roti. Harga dan Stok dibiarkan string di sini;
// koersi numerik terjadi di use case supaya kegagalan parse jadi satu
// kegagalan generik, bukan error per field.
type ItemRequest struct {
	Nama       string `form:"nama_roti"`
	CategoryID string `form:"id_kategori"`
	Deskripsi  string `form:"deskripsi"`
	Harga      string `form:"harga"`
	Stok       string `form:"stok"`
}
