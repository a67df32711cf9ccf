package entity

import (
	"strings"
	"time"
)

// Role level otorisasi user. Dikonversi sekali dari string database lewat ParseRole
// supaya perbandingan role tidak tersebar sebagai string mentah.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole mengubah string role dari database/form ke Role.
// Selain "admin" semuanya dianggap user biasa.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdmin true bila role adalah admin.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User user sistem. Dibuat lewat aksi admin (register), tidak pernah mendaftar sendiri.
type User struct {
	ID           string
	Username     string // unik
	PasswordHash string // hash bcrypt, tidak pernah plaintext setelah persist
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
