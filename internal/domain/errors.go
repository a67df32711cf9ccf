package domain

import "errors"

// Error domain (tanpa dependensi eksternal).
var (
	ErrNotFound      = errors.New("data tidak ditemukan")
	ErrUserNotFound  = errors.New("user tidak ditemukan")
	ErrUsernameTaken = errors.New("username sudah dipakai")
	ErrInvalidInput  = errors.New("input tidak valid")
	ErrUnauthorized  = errors.New("tidak terautentikasi")
	ErrForbidden     = errors.New("akses ditolak")
	ErrConflict      = errors.New("konflik dengan data yang ada")
)
