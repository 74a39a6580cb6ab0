package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/batch"
	"github.com/batmanhot/logistica-inventario/internal/application/dto"
)

// BatchHandler maneja los lotes de productos perecibles (protegido).
type BatchHandler struct {
	uc *batch.UseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *batch.UseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "sku, lot_number, expiry_date (YYYY-MM-DD), original_quantity"
// @Success      201   {object}  entity.Batch
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        sku     query  string  false  "SKU"
// @Param        status  query  string  false  "VALID | NEAR_EXPIRY | EXPIRED"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	var f dto.BatchFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del lote"
// @Param        body  body  dto.UpdateBatchRequest  true  "campos a modificar"
// @Success      200   {object}  entity.Batch
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Lote eliminado"})
}

// Sweep godoc
// @Summary      Recalcular estado de lotes
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BatchSweepResponse
// @Router       /api/batches/sweep [post]
func (h *BatchHandler) Sweep(c *fiber.Ctx) error {
	changed, err := h.uc.Sweep(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BatchSweepResponse{Message: fmt.Sprintf("%d lotes actualizados", changed), Changed: changed})
}
