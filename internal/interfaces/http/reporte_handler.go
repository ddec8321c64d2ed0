package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/usecase"
)

// ReporteHandler maneja las peticiones HTTP de reportes (protegido).
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// ResumenInventario godoc
// @Summary      Reporte básico de inventario
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenInventarioResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario [get]
func (h *ReporteHandler) ResumenInventario(c *fiber.Ctx) error {
	out, err := h.uc.ResumenInventario()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ResumenInventarioPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReporteHandler) ResumenInventarioPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ResumenInventarioPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(pdfBytes)
}
