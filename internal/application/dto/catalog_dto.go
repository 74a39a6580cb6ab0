package dto

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// CreateCatalogItemRequest alta de un producto en el catálogo.
type CreateCatalogItemRequest struct {
	SKU        string `json:"sku" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=200"`
	Category   string `json:"category"`
	Barcode    string `json:"barcode"`
	Perishable bool   `json:"perishable"`
}

// UpdateCatalogItemRequest edición de un producto. El SKU no cambia: lo referencian el stock
// y el historial.
type UpdateCatalogItemRequest struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	Barcode    *string `json:"barcode"`
	Perishable *bool   `json:"perishable"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CatalogFilter filtros del listado del catálogo.
type CatalogFilter struct {
	Query      string `query:"q"` // busca en SKU, nombre y categoría sin distinguir tildes
	Category   string `query:"category"`
	Perishable *bool  `query:"perishable"`
}

// CatalogListResponse listado del catálogo.
type CatalogListResponse struct {
	Items []entity.CatalogItem `json:"items"`
	Total int                  `json:"total"`
}

// WarehouseListResponse directorio de bodegas en su orden configurado.
type WarehouseListResponse struct {
	Items []string `json:"items"`
}
