package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/directory"
	"github.com/batmanhot/logistica-inventario/internal/application/dto"
)

// directoryFilter lee el filtro de la query; false si ya respondió 400.
func directoryFilter(c *fiber.Ctx) (dto.DirectoryFilter, bool) {
	var f dto.DirectoryFilter
	if err := c.QueryParser(&f); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
		return f, false
	}
	return f, true
}

// PartnerHandler directorio de clientes y proveedores (protegido).
type PartnerHandler struct {
	uc *directory.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *directory.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar socio comercial
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "name, kind (CLIENT|SUPPLIER), tax_id"
// @Success      201   {object}  entity.Partner
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
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
// @Summary      Listar socios
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre o RUC"
// @Param        kind    query  string  false  "CLIENT | SUPPLIER"
// @Param        status  query  string  false  "active | inactive"
// @Success      200  {array}  entity.Partner
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	f, ok := directoryFilter(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Listar clientes
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Partner
// @Router       /api/partners/clients [get]
func (h *PartnerHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.Clients(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Listar proveedores
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Partner
// @Router       /api/partners/suppliers [get]
func (h *PartnerHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar socio
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del socio"
// @Param        body  body  dto.UpdatePartnerRequest  true  "campos a modificar"
// @Success      200   {object}  entity.Partner
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartnerRequest
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
// @Summary      Eliminar socio
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del socio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Socio eliminado"})
}

// CarrierHandler directorio de transportistas (protegido).
type CarrierHandler struct {
	uc *directory.CarrierUseCase
}

// NewCarrierHandler construye el handler.
func NewCarrierHandler(uc *directory.CarrierUseCase) *CarrierHandler {
	return &CarrierHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transportista
// @Tags         carriers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarrierRequest  true  "name, tax_id, plate, driver"
// @Success      201   {object}  entity.Carrier
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carriers [post]
func (h *CarrierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarrierRequest
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
// @Summary      Listar transportistas
// @Tags         carriers
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre, RUC, placa o conductor"
// @Param        status  query  string  false  "active | inactive"
// @Success      200  {array}  entity.Carrier
// @Router       /api/carriers [get]
func (h *CarrierHandler) List(c *fiber.Ctx) error {
	f, ok := directoryFilter(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar transportista
// @Tags         carriers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del transportista"
// @Param        body  body  dto.UpdateCarrierRequest  true  "campos a modificar"
// @Success      200   {object}  entity.Carrier
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carriers/{id} [put]
func (h *CarrierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCarrierRequest
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
// @Summary      Eliminar transportista
// @Tags         carriers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del transportista"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carriers/{id} [delete]
func (h *CarrierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Transportista eliminado"})
}

// CategoryHandler categorías del catálogo (protegido).
type CategoryHandler struct {
	uc *directory.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *directory.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre o descripción"
// @Param        status  query  string  false  "active | inactive"
// @Success      200  {array}  entity.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	f, ok := directoryFilter(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar categoría
// @Description  Renombrarla actualiza la categoría de los productos que la usan.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "campos a modificar"
// @Success      200   {object}  entity.Category
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Categoría eliminada"})
}
