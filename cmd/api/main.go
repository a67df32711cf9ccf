package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/farhanzaidann/paw-12/internal/application/auth"
	"github.com/farhanzaidann/paw-12/internal/application/report"
	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
	"github.com/farhanzaidann/paw-12/internal/infrastructure/memory"
	"github.com/farhanzaidann/paw-12/internal/infrastructure/pdf"
	"github.com/farhanzaidann/paw-12/internal/infrastructure/postgres"
	"github.com/farhanzaidann/paw-12/internal/infrastructure/redisstore"
	httpRouter "github.com/farhanzaidann/paw-12/internal/interfaces/http"
	"github.com/farhanzaidann/paw-12/internal/interfaces/view"
	"github.com/farhanzaidann/paw-12/pkg/config"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("menjalankan aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	// Session store: Redis bila dikonfigurasi, in-memory kalau tidak.
	var sessions repository.SessionStore
	if cfg.Redis.Addr != "" {
		redisSessions, err := redisstore.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("koneksi ke Redis")
		}
		defer redisSessions.Close()
		sessions = redisSessions
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session store: redis")
	} else {
		sessions = memory.NewSessionStore()
		log.Warn().Msg("session store: in-memory, sesi hilang saat restart")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	authUC := auth.NewUseCase(userRepo, sessions, sessionTTL)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo)
	reportUC := report.NewCatalogReportUseCase(categoryRepo, itemRepo, pdf.NewMarotoCatalogGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        view.New(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ItemUC:        itemUC,
		ReportUC:      reportUC,
		Sessions:      sessions,
		SessionCookie: cfg.Session.CookieName,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}
