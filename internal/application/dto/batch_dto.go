package dto

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// CreateBatchRequest alta de un lote. ExpiryDate en formato YYYY-MM-DD.
type CreateBatchRequest struct {
	SKU              string `json:"sku" validate:"required"`
	LotNumber        string `json:"lot_number" validate:"required"`
	ExpiryDate       string `json:"expiry_date" validate:"required"`
	OriginalQuantity int    `json:"original_quantity" validate:"gt=0"`
}

// UpdateBatchRequest edición de un lote; los campos ausentes conservan su valor.
type UpdateBatchRequest struct {
	SKU              *string `json:"sku"`
	LotNumber        *string `json:"lot_number"`
	ExpiryDate       *string `json:"expiry_date"`
	OriginalQuantity *int    `json:"original_quantity"`
	CurrentQuantity  *int    `json:"current_quantity"`
}

// BatchFilter filtros del listado de lotes.
type BatchFilter struct {
	SKU    string `query:"sku"`
	Status string `query:"status"` // VALID | NEAR_EXPIRY | EXPIRED
}

// BatchListResponse lotes con los contadores de alerta.
type BatchListResponse struct {
	Items      []entity.Batch `json:"items"`
	Expired    int            `json:"expired"`
	NearExpiry int            `json:"near_expiry"`
}

// BatchSweepResponse resultado de recalcular estados de lotes.
type BatchSweepResponse struct {
	Message string `json:"message"`
	Changed int    `json:"changed"`
}
