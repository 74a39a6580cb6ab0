package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/application/report"
)

// StockHandler consulta el snapshot de stock, el resumen y el reporte PDF (protegido).
type StockHandler struct {
	uc     *inventory.UseCase
	report *report.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase, report *report.UseCase) *StockHandler {
	return &StockHandler{uc: uc, report: report}
}

// List godoc
// @Summary      Stock por producto, bodega y ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse  query  string  false  "Bodega"
// @Param        sku        query  string  false  "SKU"
// @Param        status     query  string  false  "AVAILABLE | LOW | OUT_OF_STOCK"
// @Param        q          query  string  false  "Búsqueda por SKU o nombre"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var f dto.StockFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListStock(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary devuelve los indicadores del tablero.
// GET /api/dashboard/summary
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse  query  string  false  "Bodega (vacío = todas)"
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.report.StockPDF(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock.pdf"`)
	return c.Send(pdf)
}
