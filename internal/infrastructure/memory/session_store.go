package memory

import (
	"context"
	"sync"
	"time"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore penyimpanan sesi in-memory dengan TTL, untuk development dan test.
// Produksi sebaiknya memakai store Redis supaya sesi selamat dari restart proses.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionStore membuat store kosong.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]entity.Session),
		now:      time.Now,
	}
}

// Put menyimpan sesi, menimpa token yang sama bila ada.
func (s *SessionStore) Put(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

// Get mengambil sesi berdasarkan token. (nil, nil) bila tidak ada atau kedaluwarsa;
// sesi kedaluwarsa sekalian dibersihkan.
func (s *SessionStore) Get(_ context.Context, token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	out := sess
	return &out, nil
}

// Delete menghapus sesi. Idempoten.
func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
