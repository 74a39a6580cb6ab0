package entity

import "time"

// LocationStatus estado operativo de una ubicación.
type LocationStatus string

const (
	LocationStatusAvailable   LocationStatus = "AVAILABLE"   // disponible
	LocationStatusBlocked     LocationStatus = "BLOCKED"     // bloqueada
	LocationStatusMaintenance LocationStatus = "MAINTENANCE" // mantenimiento
)

// Location representa una ubicación física dentro de una bodega (estante, rack, piso, cámara).
// CapacityCurrent pertenece al proyector de capacidad; las ediciones del registro no lo tocan.
type Location struct {
	ID              string         `json:"id"`
	Warehouse       string         `json:"warehouse"`
	Code            string         `json:"code"`
	Type            string         `json:"type"`
	Zone            string         `json:"zone"`
	CapacityMax     int            `json:"capacity_max"`
	CapacityCurrent int            `json:"capacity_current"`
	Status          LocationStatus `json:"status"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// HasRoom indica si la ubicación acepta más mercadería: disponible y bajo su capacidad máxima.
func (l Location) HasRoom() bool {
	return l.Status == LocationStatusAvailable && l.CapacityCurrent < l.CapacityMax
}

// ValidLocationStatus reporta si s es un estado conocido.
func ValidLocationStatus(s LocationStatus) bool {
	switch s {
	case LocationStatusAvailable, LocationStatusBlocked, LocationStatusMaintenance:
		return true
	}
	return false
}
