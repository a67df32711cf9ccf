package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// HomeHandler merender halaman utama: seluruh kategori dan roti.
type HomeHandler struct {
	categoryUC *usecase.CategoryUseCase
	itemUC     *usecase.ItemUseCase
	log        *logger.Logger
}

// NewHomeHandler membuat handler index.
func NewHomeHandler(categoryUC *usecase.CategoryUseCase, itemUC *usecase.ItemUseCase, log *logger.Logger) *HomeHandler {
	return &HomeHandler{categoryUC: categoryUC, itemUC: itemUC, log: log}
}

// Index menampilkan katalog lengkap untuk user yang sudah login.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	session := CurrentSession(c)

	kategori, err := h.categoryUC.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("ambil daftar kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	roti, err := h.itemUC.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("ambil daftar roti gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}

	return c.Render("index", fiber.Map{
		"Username": session.Username,
		"Role":     string(session.Role),
		"IsAdmin":  session.Role.IsAdmin(),
		"Kategori": kategori,
		"Roti":     roti,
	})
}
