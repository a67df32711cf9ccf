package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

// UseCase autentikasi: login, logout, dan pembuatan user oleh admin.
type UseCase struct {
	userRepo   repository.UserRepository
	sessions   repository.SessionStore
	sessionTTL time.Duration
}

// NewUseCase membuat use case auth.
func NewUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, sessionTTL time.Duration) *UseCase {
	return &UseCase{userRepo: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

// Login memverifikasi username/password dan membuat sesi baru di store.
// Username tidak dikenal dan password salah sama-sama mengembalikan
// domain.ErrUnauthorized — sengaja tidak dibedakan supaya tidak membocorkan
// username mana yang terdaftar.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
	if err := uc.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout menghapus sesi di store. Idempoten: token yang sudah hilang bukan error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, token)
}

// Register membuat user baru (dipanggil dari rute yang sudah dijaga admin-only;
// otorisasi adalah urusan gate, bukan di sini).
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.ParseRole(in.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
