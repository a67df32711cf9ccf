// Seed sekali jalan: membuat user admin pertama. User tidak pernah mendaftar
// sendiri, jadi instalasi baru butuh binary ini sebelum aplikasi bisa dipakai.
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=rahasia go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/infrastructure/postgres"
	"github.com/farhanzaidann/paw-12/pkg/config"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal().Msg("ADMIN_USERNAME dan ADMIN_PASSWORD wajib di-set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	now := time.Now()
	userRepo := postgres.NewUserRepository(pool)
	err = userRepo.Create(ctx, &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if err == domain.ErrUsernameTaken {
			log.Warn().Str("username", username).Msg("user admin sudah ada, tidak diubah")
			return
		}
		log.Fatal().Err(err).Msg("buat user admin")
	}

	log.Info().Str("username", username).Msg("user admin dibuat")
}
