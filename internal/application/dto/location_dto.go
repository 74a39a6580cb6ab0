package dto

// CreateLocationRequest alta de una ubicación.
type CreateLocationRequest struct {
	Warehouse   string `json:"warehouse" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Type        string `json:"type"` // estante, rack, piso, cámara
	Zone        string `json:"zone"`
	CapacityMax int    `json:"capacity_max" validate:"gt=0"`
	Status      string `json:"status" validate:"omitempty,oneof=AVAILABLE BLOCKED MAINTENANCE"`
	Notes       string `json:"notes"`
}

// UpdateLocationRequest edición de una ubicación. La ocupación actual no se acepta desde la API.
type UpdateLocationRequest struct {
	Warehouse   *string `json:"warehouse"`
	Code        *string `json:"code"`
	Type        *string `json:"type"`
	Zone        *string `json:"zone"`
	CapacityMax *int    `json:"capacity_max"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// LocationFilter filtros del listado de ubicaciones.
type LocationFilter struct {
	Warehouse string `query:"warehouse"`
	Zone      string `query:"zone"`
	Status    string `query:"status"`
}
