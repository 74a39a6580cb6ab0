package repository

import (
	"context"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// InventoryState agregado completo que se carga y guarda en una sola operación.
// Movements va del más reciente al más antiguo.
type InventoryState struct {
	Catalog    []entity.CatalogItem
	Slots      []entity.StockSlot
	Movements  []entity.MovementRecord
	Batches    []entity.Batch
	Locations  []entity.Location
	Partners   []entity.Partner
	Carriers   []entity.Carrier
	Categories []entity.Category
	Version    int64
	SavedAt    time.Time
}

// Empty indica si el almacén todavía no tiene datos (primer arranque).
func (s *InventoryState) Empty() bool {
	return s.Version == 0 && len(s.Catalog) == 0 && len(s.Slots) == 0 && len(s.Movements) == 0 &&
		len(s.Batches) == 0 && len(s.Locations) == 0 && len(s.Partners) == 0 && len(s.Carriers) == 0 &&
		len(s.Categories) == 0
}

// AggregateStore carga y guarda el agregado de inventario.
type AggregateStore interface {
	Load(ctx context.Context) (*InventoryState, error)
	Save(ctx context.Context, state *InventoryState) error
}
