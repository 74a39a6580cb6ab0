package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/catalog"
	"github.com/batmanhot/logistica-inventario/internal/application/dto"
)

// CatalogHandler maneja el maestro de productos y el directorio de bodegas (protegido).
type CatalogHandler struct {
	uc         *catalog.UseCase
	warehouses func() []string
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase, warehouses func() []string) *CatalogHandler {
	return &CatalogHandler{uc: uc, warehouses: warehouses}
}

// Create godoc
// @Summary      Agregar producto al catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogItemRequest  true  "sku, name, category, barcode, perishable"
// @Success      201   {object}  entity.CatalogItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalog [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  entity.CatalogItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{sku} [get]
func (h *CatalogHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("sku"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar producto
// @Description  El SKU no cambia. Renombrar el producto actualiza el nombre mostrado en su stock.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string                        true  "SKU"
// @Param        body  body  dto.UpdateCatalogItemRequest  true  "campos a modificar"
// @Success      200   {object}  entity.CatalogItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/{sku} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("sku"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Se rechaza mientras el producto tenga stock o lotes con saldo.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalog/{sku} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("sku")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado"})
}

// List godoc
// @Summary      Listar catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Búsqueda por SKU, nombre o categoría"
// @Param        category    query  string  false  "Categoría"
// @Param        perishable  query  bool    false  "Solo perecibles / no perecibles"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var f dto.CatalogFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Warehouses godoc
// @Summary      Directorio de bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *CatalogHandler) Warehouses(c *fiber.Ctx) error {
	return c.JSON(dto.WarehouseListResponse{Items: h.warehouses()})
}
