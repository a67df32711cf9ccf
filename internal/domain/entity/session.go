package entity

import "time"

// Session identitas yang sudah login, disimpan di server dan diikat ke client
// lewat token opaque di cookie. Hilang saat logout atau kedaluwarsa.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired true bila sesi sudah lewat umurnya.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
