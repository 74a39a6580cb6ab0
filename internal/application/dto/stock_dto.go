package dto

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// StockFilter filtros del listado de stock.
type StockFilter struct {
	Warehouse string `query:"warehouse"`
	SKU       string `query:"sku"`
	Status    string `query:"status"`
	Query     string `query:"q"` // SKU o nombre, sin distinguir tildes
}

// StockListResponse slots de stock y unidades totales del listado.
type StockListResponse struct {
	Items      []entity.StockSlot `json:"items"`
	TotalUnits int                `json:"total_units"`
}

// DashboardSummary indicadores del tablero principal.
type DashboardSummary struct {
	TotalUnits         int            `json:"total_units"`
	Products           int            `json:"products"`
	Slots              int            `json:"slots"`
	SlotsByStatus      map[string]int `json:"slots_by_status"`
	UnitsByWarehouse   map[string]int `json:"units_by_warehouse"`
	MovementsByKind    map[string]int `json:"movements_by_kind"`
	ExpiredBatches     int            `json:"expired_batches"`
	NearExpiryBatches  int            `json:"near_expiry_batches"`
	AvailableLocations int            `json:"available_locations"`
}

// CapacityRecomputeResponse resultado de recalcular la ocupación de ubicaciones.
type CapacityRecomputeResponse struct {
	Message   string            `json:"message"`
	Locations []entity.Location `json:"locations"`
}
