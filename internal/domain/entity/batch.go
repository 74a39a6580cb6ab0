package entity

import "time"

// BatchStatus estado de un lote perecible según su fecha de vencimiento.
type BatchStatus string

const (
	BatchStatusValid      BatchStatus = "VALID"       // vigente
	BatchStatusNearExpiry BatchStatus = "NEAR_EXPIRY" // por vencer
	BatchStatusExpired    BatchStatus = "EXPIRED"     // vencido
)

// Batch representa un lote de un producto perecible.
// CurrentQuantity se gestiona como libro propio, desacoplado de los movimientos.
type Batch struct {
	ID               string      `json:"id"`
	SKU              string      `json:"sku"`
	LotNumber        string      `json:"lot_number"`
	ExpiryDate       time.Time   `json:"expiry_date"`
	OriginalQuantity int         `json:"original_quantity"`
	CurrentQuantity  int         `json:"current_quantity"`
	Status           BatchStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// BatchConsumption unidades que un movimiento descontó de un lote.
type BatchConsumption struct {
	BatchID   string `json:"batch_id"`
	LotNumber string `json:"lot_number"`
	Quantity  int    `json:"quantity"`
}
