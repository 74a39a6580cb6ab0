package inventory

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// CatalogLookup colaborador de solo lectura sobre el maestro de productos.
type CatalogLookup interface {
	FindBySKU(sku string) (entity.CatalogItem, bool)
}

// Catalog índice en memoria del catálogo por SKU.
type Catalog map[string]entity.CatalogItem

// NewCatalog indexa los ítems por SKU. Ante SKUs repetidos gana el último.
func NewCatalog(items []entity.CatalogItem) Catalog {
	c := make(Catalog, len(items))
	for _, it := range items {
		c[it.SKU] = it
	}
	return c
}

// FindBySKU implementa CatalogLookup.
func (c Catalog) FindBySKU(sku string) (entity.CatalogItem, bool) {
	it, ok := c[sku]
	return it, ok
}
