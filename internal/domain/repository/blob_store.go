package repository

import "context"

// Claves del almacén, una por colección del agregado.
const (
	KeyCatalog    = "logi_catalog"
	KeyStock      = "inventory_data"
	KeyMovements  = "inventory_movements"
	KeyBatches    = "batches"
	KeyLocations  = "logi_locations"
	KeyPartners   = "logi_partners"
	KeyCarriers   = "transporters"
	KeyCategories = "categories"
	KeyMeta       = "aggregate_meta"
)

// StateKeys todas las claves que componen el agregado de inventario.
var StateKeys = []string{
	KeyCatalog, KeyStock, KeyMovements, KeyBatches, KeyLocations,
	KeyPartners, KeyCarriers, KeyCategories, KeyMeta,
}

// BlobStore define el puerto de persistencia clave -> bytes.
// PutMany debe ser atómico: o se escriben todas las claves o ninguna.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	PutMany(ctx context.Context, blobs map[string][]byte) error
	Close() error
}
