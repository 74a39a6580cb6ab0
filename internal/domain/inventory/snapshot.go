package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// DefaultLowStockThreshold cantidad bajo la cual un slot pasa a stock bajo.
const DefaultLowStockThreshold = 20

// DeltaOutcome resultado de aplicar un delta sobre el snapshot.
type DeltaOutcome int

const (
	// DeltaApplied el slot existía y se ajustó su cantidad.
	DeltaApplied DeltaOutcome = iota
	// DeltaCreated se creó el slot con la cantidad del delta.
	DeltaCreated
	// DeltaDroppedUnknownSKU delta positivo para un SKU ausente del catálogo; no hubo cambio.
	DeltaDroppedUnknownSKU
	// DeltaDroppedMissingSlot delta no positivo sobre un slot inexistente; no hubo cambio.
	DeltaDroppedMissingSlot
)

func (o DeltaOutcome) String() string {
	switch o {
	case DeltaApplied:
		return "applied"
	case DeltaCreated:
		return "created"
	case DeltaDroppedUnknownSKU:
		return "dropped_unknown_sku"
	case DeltaDroppedMissingSlot:
		return "dropped_missing_slot"
	}
	return "unknown"
}

// Dropped indica si el delta se descartó por un hueco referencial.
func (o DeltaOutcome) Dropped() bool {
	return o == DeltaDroppedUnknownSKU || o == DeltaDroppedMissingSlot
}

// StatusFor deriva el estado de un slot a partir de su cantidad.
func StatusFor(quantity, lowThreshold int) entity.SlotStatus {
	switch {
	case quantity <= 0:
		return entity.SlotStatusOutOfStock
	case quantity < lowThreshold:
		return entity.SlotStatusLow
	default:
		return entity.SlotStatusAvailable
	}
}

// Snapshot cantidades actuales por (sku, bodega, ubicación). Los slots conservan el orden
// de creación y nunca se eliminan.
type Snapshot struct {
	catalog      CatalogLookup
	lowThreshold int
	slots        []entity.StockSlot
	index        map[entity.SlotKey]int
}

// NewSnapshot construye el snapshot a partir de slots persistidos. lowThreshold <= 0 usa el valor por defecto.
func NewSnapshot(catalog CatalogLookup, slots []entity.StockSlot, lowThreshold int) *Snapshot {
	if lowThreshold <= 0 {
		lowThreshold = DefaultLowStockThreshold
	}
	s := &Snapshot{
		catalog:      catalog,
		lowThreshold: lowThreshold,
		slots:        make([]entity.StockSlot, 0, len(slots)),
		index:        make(map[entity.SlotKey]int, len(slots)),
	}
	for _, sl := range slots {
		if _, dup := s.index[sl.Key()]; dup {
			continue
		}
		s.index[sl.Key()] = len(s.slots)
		s.slots = append(s.slots, sl)
	}
	return s
}

// ApplyDelta es el único primitivo que modifica cantidades.
//
// Slot existente: suma delta (sin importar el signo ni si el resultado queda negativo) y
// recalcula el estado. Slot inexistente con delta > 0: lo crea si el SKU está en el catálogo.
// Cualquier otro caso no modifica nada y se informa en el resultado.
func (s *Snapshot) ApplyDelta(key entity.SlotKey, delta int) DeltaOutcome {
	if i, ok := s.index[key]; ok {
		sl := &s.slots[i]
		sl.Quantity += delta
		sl.Status = StatusFor(sl.Quantity, s.lowThreshold)
		return DeltaApplied
	}
	if delta <= 0 {
		return DeltaDroppedMissingSlot
	}
	item, ok := s.catalog.FindBySKU(key.SKU)
	if !ok {
		return DeltaDroppedUnknownSKU
	}
	s.index[key] = len(s.slots)
	s.slots = append(s.slots, entity.StockSlot{
		SKU:       item.SKU,
		Name:      item.Name,
		Warehouse: key.Warehouse,
		Location:  key.Location,
		Quantity:  delta,
		Status:    StatusFor(delta, s.lowThreshold),
		PricePEN:  decimal.Zero,
		PriceUSD:  decimal.Zero,
	})
	return DeltaCreated
}

// Rename actualiza el nombre mostrado en los slots del SKU. No toca cantidades.
func (s *Snapshot) Rename(sku, name string) {
	for i := range s.slots {
		if s.slots[i].SKU == sku {
			s.slots[i].Name = name
		}
	}
}

// Get devuelve el slot con la clave exacta.
func (s *Snapshot) Get(key entity.SlotKey) (entity.StockSlot, bool) {
	i, ok := s.index[key]
	if !ok {
		return entity.StockSlot{}, false
	}
	return s.slots[i], true
}

// Quantity cantidad del slot; 0 si no existe.
func (s *Snapshot) Quantity(key entity.SlotKey) int {
	if i, ok := s.index[key]; ok {
		return s.slots[i].Quantity
	}
	return 0
}

// Slots copia de todos los slots en orden de creación.
func (s *Snapshot) Slots() []entity.StockSlot {
	out := make([]entity.StockSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len cantidad de slots.
func (s *Snapshot) Len() int { return len(s.slots) }

// LowThreshold umbral de stock bajo en uso.
func (s *Snapshot) LowThreshold() int { return s.lowThreshold }
