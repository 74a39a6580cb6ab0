package entity

import "time"

// Carrier representa una empresa de transporte con su unidad y chofer habituales.
type Carrier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"` // RUC
	Plate     string    `json:"plate"`
	Driver    string    `json:"driver,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
