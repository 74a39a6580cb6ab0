package entity

import "github.com/shopspring/decimal"

// SlotStatus disponibilidad derivada de la cantidad de un slot.
type SlotStatus string

const (
	SlotStatusOutOfStock SlotStatus = "OUT_OF_STOCK" // agotado
	SlotStatusLow        SlotStatus = "LOW"          // stock bajo
	SlotStatusAvailable  SlotStatus = "AVAILABLE"    // disponible
)

// SlotKey identifica un slot de stock. Location vacío es la clave de nivel bodega
// y es distinta de cualquier código de ubicación.
type SlotKey struct {
	SKU       string
	Warehouse string
	Location  string
}

// StockSlot representa la cantidad actual de un SKU en una bodega (y ubicación opcional).
// Solo se modifica mediante el primitivo de delta del snapshot.
type StockSlot struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Warehouse string          `json:"warehouse"`
	Location  string          `json:"location,omitempty"`
	Quantity  int             `json:"quantity"`
	Status    SlotStatus      `json:"status"`
	PricePEN  decimal.Decimal `json:"price_pen"`
	PriceUSD  decimal.Decimal `json:"price_usd"`
}

// Key devuelve la clave (sku, bodega, ubicación) del slot.
func (s StockSlot) Key() SlotKey {
	return SlotKey{SKU: s.SKU, Warehouse: s.Warehouse, Location: s.Location}
}
