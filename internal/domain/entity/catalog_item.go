package entity

// Estados de un ítem del catálogo y de los registros de directorio.
const (
	CatalogStatusActive   = "active"
	CatalogStatusInactive = "inactive"
)

// CatalogItem representa un producto del maestro de catálogo.
// El núcleo de inventario solo lo consulta por SKU; nunca lo modifica.
type CatalogItem struct {
	ID         string `json:"id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Barcode    string `json:"barcode,omitempty"`
	Perishable bool   `json:"perishable"`
	Status     string `json:"status"`
}
