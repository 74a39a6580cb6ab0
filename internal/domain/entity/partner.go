package entity

import "time"

// PartnerKind distingue clientes de proveedores.
type PartnerKind string

const (
	PartnerKindClient   PartnerKind = "CLIENT"   // cliente
	PartnerKindSupplier PartnerKind = "SUPPLIER" // proveedor
)

// Partner representa un socio comercial. Los movimientos lo referencian por nombre
// en MovementMeta.Counterparty.
type Partner struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      PartnerKind `json:"kind"`
	TaxID     string      `json:"tax_id"` // RUC
	Phone     string      `json:"phone,omitempty"`
	Email     string      `json:"email,omitempty"`
	Address   string      `json:"address,omitempty"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
