package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// ReportHandler expone el reporte de valorización del inventario.
type ReportHandler struct {
	reportUC *report.InventoryReportUseCase
	userRepo repository.UserRepository
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(reportUC *report.InventoryReportUseCase, userRepo repository.UserRepository) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, userRepo: userRepo}
}

// DownloadInventory genera y descarga el PDF del inventario valorizado.
func (h *ReportHandler) DownloadInventory(c *fiber.Ctx) error {
	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	pdfBytes, filename, err := h.reportUC.Download(c.Context(), actor)
	if err != nil {
		return businessError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
