package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/report"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// ReportHandler menyajikan laporan PDF daftar harga (admin-only lewat gate).
type ReportHandler struct {
	uc  *report.CatalogReportUseCase
	log *logger.Logger
}

// NewReportHandler membuat handler laporan.
func NewReportHandler(uc *report.CatalogReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// CatalogPDF mengirim PDF daftar harga katalog sebagai unduhan.
func (h *ReportHandler) CatalogPDF(c *fiber.Ctx) error {
	data, err := h.uc.CatalogPDF(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("generate PDF daftar harga gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="daftar-harga.pdf"`)
	return c.Send(data)
}
