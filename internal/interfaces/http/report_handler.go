package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndiwanjo/constructora-api/internal/application/report"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler expone la exportación de reportes en PDF y Excel (protegido).
type ReportHandler struct {
	uc *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ModulePDF GET /api/reports/:module/pdf
func (h *ReportHandler) ModulePDF(c *fiber.Ctx) error {
	export, err := h.uc.ExportPDF(c.Context(), c.Params("module"))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, contentTypePDF, export)
}

// ModuleExcel GET /api/reports/:module/excel
func (h *ReportHandler) ModuleExcel(c *fiber.Ctx) error {
	export, err := h.uc.ExportExcel(c.Context(), c.Params("module"))
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, contentTypeXLSX, export)
}

// FullPDF GET /api/reports/full/pdf — todos los módulos en un solo documento.
func (h *ReportHandler) FullPDF(c *fiber.Ctx) error {
	export, err := h.uc.ExportFullPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, contentTypePDF, export)
}

// FullExcel GET /api/reports/full/excel — un sheet por módulo.
func (h *ReportHandler) FullExcel(c *fiber.Ctx) error {
	export, err := h.uc.ExportFullExcel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendExport(c, contentTypeXLSX, export)
}

func sendExport(c *fiber.Ctx, contentType string, export *report.Export) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Send(export.Data)
}
