package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/auth"
	"github.com/farhanzaidann/paw-12/internal/application/report"
	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// RouterDeps dependensi untuk router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CategoryUC    *usecase.CategoryUseCase
	ItemUC        *usecase.ItemUseCase
	ReportUC      *report.CatalogReportUseCase
	Sessions      repository.SessionStore
	SessionCookie string
	Log           *logger.Logger
}

// Router mendaftarkan seluruh rute aplikasi. Setiap rute yang dilindungi melewati
// gate dengan urutan tetap: LoadSession -> RequireLogin -> (opsional) RequireAdmin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(LoadSession(deps.Sessions, deps.SessionCookie))

	// Auth (publik)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCookie, deps.Log)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Index: cukup login, semua role boleh lihat katalog.
	homeHandler := NewHomeHandler(deps.CategoryUC, deps.ItemUC, deps.Log)
	app.Get("/", RequireLogin(), homeHandler.Index)

	// Tambah user (admin only)
	register := app.Group("/register", RequireLogin(), RequireAdmin())
	register.Get("/", authHandler.ShowRegister)
	register.Post("/", authHandler.Register)

	// Kategori (admin only)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	kategori := app.Group("/kategori", RequireLogin(), RequireAdmin())
	kategori.Get("/insert", categoryHandler.ShowInsert)
	kategori.Post("/insert", categoryHandler.Insert)
	kategori.Get("/update/:id", categoryHandler.ShowUpdate)
	kategori.Post("/update/:id", categoryHandler.Update)
	kategori.Get("/delete/:id", categoryHandler.Delete)

	// Daftar roti (admin only)
	itemHandler := NewItemHandler(deps.ItemUC, deps.CategoryUC, deps.Log)
	roti := app.Group("/roti", RequireLogin(), RequireAdmin())
	roti.Get("/insert", itemHandler.ShowInsert)
	roti.Post("/insert", itemHandler.Insert)
	roti.Get("/update/:id", itemHandler.ShowUpdate)
	roti.Post("/update/:id", itemHandler.Update)
	roti.Get("/delete/:id", itemHandler.Delete)

	// Laporan (admin only)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	laporan := app.Group("/laporan", RequireLogin(), RequireAdmin())
	laporan.Get("/katalog.pdf", reportHandler.CatalogPDF)
}
