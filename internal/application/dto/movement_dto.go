package dto

import (
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// MovementMetaDTO datos descriptivos de un movimiento. DocumentDate en formato YYYY-MM-DD.
type MovementMetaDTO struct {
	Counterparty   string `json:"counterparty,omitempty"` // proveedor o cliente
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	DocumentDate   string `json:"document_date,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// InboundRequest body para POST /api/movements/inbound.
type InboundRequest struct {
	SKU       string `json:"sku" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Warehouse string `json:"warehouse" validate:"required"`
	Location  string `json:"location"`
	EntryType string `json:"entry_type"` // compra, devolución, producción, ajuste
	MovementMetaDTO
}

// OutboundRequest body para POST /api/movements/outbound.
type OutboundRequest struct {
	SKU       string `json:"sku" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Warehouse string `json:"warehouse" validate:"required"`
	Location  string `json:"location"`
	MovementMetaDTO
}

// TransferRequest body para POST /api/movements/transfers.
// IsLocal=true exige DestinationWarehouse; false exige ExternalDestination.
type TransferRequest struct {
	SKU                  string `json:"sku" validate:"required"`
	Quantity             int    `json:"quantity" validate:"required,gt=0"`
	OriginWarehouse      string `json:"origin_warehouse" validate:"required"`
	OriginLocation       string `json:"origin_location"`
	IsLocal              bool   `json:"is_local"`
	DestinationWarehouse string `json:"destination_warehouse"`
	DestinationLocation  string `json:"destination_location"`
	ExternalDestination  string `json:"external_destination"`
	MovementMetaDTO
}

// UpdateMovementRequest body para PUT /api/movements/:id. Los campos ausentes conservan
// su valor. Kind (IN | OUT | TRANSFER) cambia el tipo del movimiento; IsLocal elige el
// subtipo de un traslado.
type UpdateMovementRequest struct {
	Kind                 *string          `json:"kind"`
	SKU                  *string          `json:"sku"`
	Quantity             *int             `json:"quantity"`
	Warehouse            *string          `json:"warehouse"`
	Location             *string          `json:"location"`
	EntryType            *string          `json:"entry_type"`
	IsLocal              *bool            `json:"is_local"`
	DestinationWarehouse *string          `json:"destination_warehouse"`
	DestinationLocation  *string          `json:"destination_location"`
	ExternalDestination  *string          `json:"external_destination"`
	Meta                 *MovementMetaDTO `json:"meta"`
}

// MovementFilter filtros del historial.
type MovementFilter struct {
	Kind      string `query:"kind"` // IN | OUT | TRANSFER
	SKU       string `query:"sku"`
	Warehouse string `query:"warehouse"` // origen o destino
	PageRequest
}

// MovementResponse movimiento aplanado para la API. Location es la ubicación de la
// entrada/salida o la de origen en traslados.
type MovementResponse struct {
	ID                   string    `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	Kind                 string    `json:"kind"`
	Subtype              string    `json:"subtype,omitempty"`
	SKU                  string    `json:"sku"`
	ProductName          string    `json:"product_name,omitempty"`
	Quantity             int       `json:"quantity"`
	Warehouse            string    `json:"warehouse"`
	Location             string    `json:"location,omitempty"`
	EntryType            string    `json:"entry_type,omitempty"`
	DestinationWarehouse string    `json:"destination_warehouse,omitempty"`
	DestinationLocation  string    `json:"destination_location,omitempty"`
	ExternalDestination  string    `json:"external_destination,omitempty"`
	MovementMetaDTO
	BatchUses []entity.BatchConsumption `json:"batch_uses,omitempty"` // lotes descontados (FIFO)
}

// MovementListResponse página del historial, el más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementMutationResponse resultado de registrar, editar o eliminar un movimiento.
// Warnings lista los ajustes descartados por huecos referenciales.
type MovementMutationResponse struct {
	Message  string            `json:"message"`
	Movement *MovementResponse `json:"movement,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}
