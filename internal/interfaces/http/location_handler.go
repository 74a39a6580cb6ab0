package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/application/location"
)

// LocationHandler maneja el registro de ubicaciones y su ocupación (protegido).
type LocationHandler struct {
	uc *location.UseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *location.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "warehouse, code, capacity_max"
// @Success      201   {object}  entity.Location
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
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
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        warehouse  query  string  false  "Bodega"
// @Param        zone       query  string  false  "Zona"
// @Param        status     query  string  false  "AVAILABLE | BLOCKED | MAINTENANCE"
// @Success      200  {array}  entity.Location
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	var f dto.LocationFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Available godoc
// @Summary      Ubicaciones con espacio disponible
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        warehouse  query  string  false  "Bodega"
// @Success      200  {array}  entity.Location
// @Router       /api/locations/available [get]
func (h *LocationHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.Context(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar ubicación
// @Description  La ocupación actual no se modifica desde aquí; use /api/locations/recompute.
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la ubicación"
// @Param        body  body  dto.UpdateLocationRequest  true  "campos a modificar"
// @Success      200   {object}  entity.Location
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
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
// @Summary      Eliminar ubicación
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ubicación eliminada"})
}

// Recompute godoc
// @Summary      Recalcular ocupación de ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CapacityRecomputeResponse
// @Router       /api/locations/recompute [post]
func (h *LocationHandler) Recompute(c *fiber.Ctx) error {
	out, err := h.uc.Recompute(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
