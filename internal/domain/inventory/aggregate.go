package inventory

import (
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

// Options parámetros de derivación de estados.
type Options struct {
	LowStockThreshold int
	NearExpiryDays    int
}

// Aggregate estado vivo del inventario: catálogo, snapshot con su historial, lotes, ubicaciones
// y directorios de socios, transportistas y categorías.
// Se construye desde el estado persistido y se vuelve a volcar completo al guardar.
type Aggregate struct {
	items      []entity.CatalogItem
	catalog    Catalog
	Ledger     *Ledger
	Batches    *BatchTracker
	Locations  []entity.Location
	Partners   []entity.Partner
	Carriers   []entity.Carrier
	Categories []entity.Category
	Version    int64
}

// FromState reconstruye el agregado. Los efectos de los movimientos persistidos ya están en los slots.
func FromState(st *repository.InventoryState, opts Options, now Clock, newID IDGenerator) *Aggregate {
	items := make([]entity.CatalogItem, len(st.Catalog))
	copy(items, st.Catalog)
	catalog := NewCatalog(items)
	snap := NewSnapshot(catalog, st.Slots, opts.LowStockThreshold)
	return &Aggregate{
		items:      items,
		catalog:    catalog,
		Ledger:     NewLedger(snap, st.Movements, now, newID),
		Batches:    NewBatchTracker(st.Batches, opts.NearExpiryDays, now, newID),
		Locations:  clone(st.Locations),
		Partners:   clone(st.Partners),
		Carriers:   clone(st.Carriers),
		Categories: clone(st.Categories),
		Version:    st.Version,
	}
}

// State vuelca el agregado para persistirlo. Version y SavedAt los fija quien guarda.
func (a *Aggregate) State() *repository.InventoryState {
	return &repository.InventoryState{
		Catalog:    clone(a.items),
		Slots:      a.Ledger.Snapshot().Slots(),
		Movements:  a.Ledger.Records(),
		Batches:    a.Batches.Batches(),
		Locations:  clone(a.Locations),
		Partners:   clone(a.Partners),
		Carriers:   clone(a.Carriers),
		Categories: clone(a.Categories),
		Version:    a.Version,
	}
}

// Catalog colaborador de consulta del catálogo.
func (a *Aggregate) Catalog() CatalogLookup { return a.catalog }

// CatalogItems ítems del catálogo en orden de alta.
func (a *Aggregate) CatalogItems() []entity.CatalogItem {
	out := make([]entity.CatalogItem, len(a.items))
	copy(out, a.items)
	return out
}

// AddCatalogItem agrega un ítem; el snapshot lo ve de inmediato. Devuelve false si el SKU ya existe.
func (a *Aggregate) AddCatalogItem(it entity.CatalogItem) bool {
	if _, dup := a.catalog[it.SKU]; dup {
		return false
	}
	a.items = append(a.items, it)
	a.catalog[it.SKU] = it
	return true
}

// UpdateCatalogItem reemplaza el ítem con el mismo SKU y renombra sus slots.
// Devuelve false si el SKU no existe.
func (a *Aggregate) UpdateCatalogItem(it entity.CatalogItem) bool {
	if _, ok := a.catalog[it.SKU]; !ok {
		return false
	}
	for i := range a.items {
		if a.items[i].SKU == it.SKU {
			a.items[i] = it
		}
	}
	a.catalog[it.SKU] = it
	a.Snapshot().Rename(it.SKU, it.Name)
	return true
}

// RemoveCatalogItem quita el ítem del catálogo. Sus slots y movimientos se conservan;
// desde ese momento el snapshot no crea slots nuevos para el SKU.
func (a *Aggregate) RemoveCatalogItem(sku string) bool {
	if _, ok := a.catalog[sku]; !ok {
		return false
	}
	out := a.items[:0]
	for _, it := range a.items {
		if it.SKU != sku {
			out = append(out, it)
		}
	}
	a.items = out
	delete(a.catalog, sku)
	return true
}

// Snapshot atajo al snapshot del historial.
func (a *Aggregate) Snapshot() *Snapshot { return a.Ledger.Snapshot() }

// RecomputeCapacities recalcula la ocupación de todas las ubicaciones desde el snapshot.
func (a *Aggregate) RecomputeCapacities() {
	a.Locations = RecomputeCapacities(a.Locations, a.Snapshot().Slots())
}

// FindLocation busca una ubicación por bodega y código.
func (a *Aggregate) FindLocation(warehouse, code string) (entity.Location, bool) {
	for _, l := range a.Locations {
		if l.Warehouse == warehouse && l.Code == code {
			return l, true
		}
	}
	return entity.Location{}, false
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
