package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/application/usecase"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// ItemHandler menangani CRUD daftar roti (admin-only lewat gate).
type ItemHandler struct {
	uc         *usecase.ItemUseCase
	categoryUC *usecase.CategoryUseCase
	log        *logger.Logger
}

// NewItemHandler membuat handler roti.
func NewItemHandler(uc *usecase.ItemUseCase, categoryUC *usecase.CategoryUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, categoryUC: categoryUC, log: log}
}

// ShowInsert merender form tambah roti dengan pilihan kategori.
func (h *ItemHandler) ShowInsert(c *fiber.Ctx) error {
	kategori, err := h.categoryUC.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("ambil daftar kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Render("roti_form", fiber.Map{
		"Title":    "Tambah Roti",
		"Action":   "/roti/insert",
		"Kategori": kategori,
	})
}

// Insert membuat roti baru lalu kembali ke index.
func (h *ItemHandler) Insert(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}
	if _, err := h.uc.Create(c.Context(), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).SendString("Data roti tidak valid.")
		}
		h.log.Error().Err(err).Msg("tambah roti gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ShowUpdate memuat roti dan daftar kategori lalu merender form edit.
func (h *ItemHandler) ShowUpdate(c *fiber.Ctx) error {
	roti, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Roti tidak ditemukan.")
		}
		h.log.Error().Err(err).Msg("ambil roti gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	kategori, err := h.categoryUC.GetAll(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("ambil daftar kategori gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Render("roti_form", fiber.Map{
		"Title":    "Edit Roti",
		"Action":   "/roti/update/" + roti.ID,
		"Roti":     roti,
		"Kategori": kategori,
	})
}

// Update memperbarui roti lalu kembali ke index.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}
	if _, err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Roti tidak ditemukan.")
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).SendString("Data roti tidak valid.")
		}
		h.log.Error().Err(err).Msg("update roti gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Delete menghapus roti tanpa syarat.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Roti tidak ditemukan.")
		}
		h.log.Error().Err(err).Msg("hapus roti gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusFound)
}
