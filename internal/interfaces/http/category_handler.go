package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// CategoryHandler menangani CRUD kategori (seluruh rutenya admin-only lewat gate).
// Setiap handler: ambil field form -> persis satu panggilan use case -> redirect/render.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler membuat handler kategori.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// ShowInsert merender form tambah kategori.
func (h *CategoryHandler) ShowInsert(c *fiber.Ctx) error {
	return c.Render("kategori_form", fiber.Map{
		"Title":  "Tambah Kategori",
		"Action": "/kategori/insert",
	})
}

// Insert membuat kategori baru lalu kembali ke index.
func (h *CategoryHandler) Insert(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}
	if _, err := h.uc.Create(c.Context(), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).SendString("Nama kategori wajib diisi.")
		}
		h.log.Error().Err(err).Msg("tambah kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ShowUpdate memuat kategori lalu merender form edit.
func (h *CategoryHandler) ShowUpdate(c *fiber.Ctx) error {
	kategori, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Kategori tidak ditemukan.")
		}
		h.log.Error().Err(err).Msg("ambil kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Render("kategori_form", fiber.Map{
		"Title":    "Edit Kategori",
		"Action":   "/kategori/update/" + kategori.ID,
		"Kategori": kategori,
	})
}

// Update memperbarui kategori lalu kembali ke index.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}
	if _, err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Kategori tidak ditemukan.")
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).SendString("Nama kategori wajib diisi.")
		}
		h.log.Error().Err(err).Msg("update kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Delete menghapus kategori. Kategori yang masih punya roti ditolak (409).
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Kategori tidak ditemukan.")
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).
				SendString("Kategori masih dipakai oleh daftar roti, hapus atau pindahkan rotinya dulu.")
		}
		h.log.Error().Err(err).Msg("hapus kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusFound)
}
