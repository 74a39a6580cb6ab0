package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// MovementKind tipo de movimiento de inventario.
type MovementKind string

const (
	MovementKindInbound  MovementKind = "IN"       // entrada
	MovementKindOutbound MovementKind = "OUT"      // salida
	MovementKindTransfer MovementKind = "TRANSFER" // traslado
)

// TransferSubtype distingue traslados entre bodegas propias de envíos fuera del inventario.
type TransferSubtype string

const (
	TransferLocal    TransferSubtype = "LOCAL"
	TransferExternal TransferSubtype = "EXTERNAL"
)

// MovementMeta datos descriptivos comunes a todos los movimientos. No afectan al stock.
type MovementMeta struct {
	Counterparty   string     `json:"counterparty,omitempty"` // proveedor o cliente
	DocumentType   string     `json:"document_type,omitempty"`
	DocumentNumber string     `json:"document_number,omitempty"`
	DocumentDate   *time.Time `json:"document_date,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// MovementDetails es la variante específica de cada tipo de movimiento.
// Solo los tipos de este paquete la implementan.
type MovementDetails interface {
	Kind() MovementKind
	Subtype() TransferSubtype
	sealed()
}

// InboundDetails entrada de mercadería.
type InboundDetails struct {
	Location  string `json:"location,omitempty"`
	EntryType string `json:"entry_type,omitempty"` // compra, devolución, producción...
}

// OutboundDetails salida de mercadería.
type OutboundDetails struct {
	Location string `json:"location,omitempty"`
}

// LocalTransferDetails traslado entre dos bodegas controladas por el sistema.
type LocalTransferDetails struct {
	OriginLocation       string `json:"origin_location,omitempty"`
	DestinationWarehouse string `json:"destination_warehouse"`
	DestinationLocation  string `json:"destination_location,omitempty"`
}

// ExternalTransferDetails envío a un destino fuera del inventario controlado.
type ExternalTransferDetails struct {
	OriginLocation      string `json:"origin_location,omitempty"`
	ExternalDestination string `json:"external_destination"`
}

func (InboundDetails) Kind() MovementKind          { return MovementKindInbound }
func (OutboundDetails) Kind() MovementKind         { return MovementKindOutbound }
func (LocalTransferDetails) Kind() MovementKind    { return MovementKindTransfer }
func (ExternalTransferDetails) Kind() MovementKind { return MovementKindTransfer }

func (InboundDetails) Subtype() TransferSubtype          { return "" }
func (OutboundDetails) Subtype() TransferSubtype         { return "" }
func (LocalTransferDetails) Subtype() TransferSubtype    { return TransferLocal }
func (ExternalTransferDetails) Subtype() TransferSubtype { return TransferExternal }

func (InboundDetails) sealed()          {}
func (OutboundDetails) sealed()         {}
func (LocalTransferDetails) sealed()    {}
func (ExternalTransferDetails) sealed() {}

// MovementRecord representa un movimiento registrado en el historial.
// Quantity es siempre la magnitud sin signo; el sentido lo da el tipo.
// Warehouse es la bodega afectada; en traslados es la de origen.
// BatchUses guarda lo que el movimiento descontó de los lotes para poder devolverlo.
type MovementRecord struct {
	ID        string
	Timestamp time.Time
	SKU       string
	Quantity  int
	Warehouse string
	Meta      MovementMeta
	Details   MovementDetails
	BatchUses []BatchConsumption
}

// Kind tipo del movimiento, derivado de su variante.
func (m MovementRecord) Kind() MovementKind {
	if m.Details == nil {
		return ""
	}
	return m.Details.Kind()
}

// Subtype subtipo del traslado; vacío si no es traslado.
func (m MovementRecord) Subtype() TransferSubtype {
	if m.Details == nil {
		return ""
	}
	return m.Details.Subtype()
}

// DestinationWarehouse bodega destino de un traslado local; vacío en otro caso.
func (m MovementRecord) DestinationWarehouse() string {
	if d, ok := m.Details.(LocalTransferDetails); ok {
		return d.DestinationWarehouse
	}
	return ""
}

type movementJSON struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	SKU       string             `json:"sku"`
	Quantity  int                `json:"quantity"`
	Warehouse string             `json:"warehouse"`
	Kind      MovementKind       `json:"kind"`
	Subtype   TransferSubtype    `json:"subtype,omitempty"`
	Meta      MovementMeta       `json:"meta"`
	Details   json.RawMessage    `json:"details"`
	BatchUses []BatchConsumption `json:"batch_uses,omitempty"`
}

// MarshalJSON serializa el movimiento con kind/subtype explícitos y la variante en details.
func (m MovementRecord) MarshalJSON() ([]byte, error) {
	if m.Details == nil {
		return nil, fmt.Errorf("movimiento %s sin detalle", m.ID)
	}
	details, err := json.Marshal(m.Details)
	if err != nil {
		return nil, err
	}
	return json.Marshal(movementJSON{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		SKU:       m.SKU,
		Quantity:  m.Quantity,
		Warehouse: m.Warehouse,
		Kind:      m.Kind(),
		Subtype:   m.Subtype(),
		Meta:      m.Meta,
		Details:   details,
		BatchUses: m.BatchUses,
	})
}

// UnmarshalJSON reconstruye la variante a partir de kind/subtype; rechaza combinaciones desconocidas.
func (m *MovementRecord) UnmarshalJSON(data []byte) error {
	var raw movementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var details MovementDetails
	var err error
	switch {
	case raw.Kind == MovementKindInbound && raw.Subtype == "":
		var d InboundDetails
		err = decodeDetails(raw.Details, &d)
		details = d
	case raw.Kind == MovementKindOutbound && raw.Subtype == "":
		var d OutboundDetails
		err = decodeDetails(raw.Details, &d)
		details = d
	case raw.Kind == MovementKindTransfer && raw.Subtype == TransferLocal:
		var d LocalTransferDetails
		err = decodeDetails(raw.Details, &d)
		details = d
	case raw.Kind == MovementKindTransfer && raw.Subtype == TransferExternal:
		var d ExternalTransferDetails
		err = decodeDetails(raw.Details, &d)
		details = d
	default:
		return fmt.Errorf("movimiento %s: combinación kind=%q subtype=%q inválida", raw.ID, raw.Kind, raw.Subtype)
	}
	if err != nil {
		return fmt.Errorf("movimiento %s: detalle: %w", raw.ID, err)
	}
	*m = MovementRecord{
		ID:        raw.ID,
		Timestamp: raw.Timestamp,
		SKU:       raw.SKU,
		Quantity:  raw.Quantity,
		Warehouse: raw.Warehouse,
		Meta:      raw.Meta,
		Details:   details,
		BatchUses: raw.BatchUses,
	}
	return nil
}

func decodeDetails(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
