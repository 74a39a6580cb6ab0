package inventory

import (
	"math"
	"sort"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// DefaultNearExpiryDays días de anticipación para marcar un lote como por vencer.
const DefaultNearExpiryDays = 30

// BatchStatusFor deriva el estado de un lote: días restantes = techo((vencimiento - hoy) / 24h);
// negativo vencido, entre 0 y nearDays por vencer, en otro caso vigente.
func BatchStatusFor(expiry, today time.Time, nearDays int) entity.BatchStatus {
	days := int(math.Ceil(expiry.Sub(today).Hours() / 24))
	switch {
	case days < 0:
		return entity.BatchStatusExpired
	case days <= nearDays:
		return entity.BatchStatusNearExpiry
	default:
		return entity.BatchStatusValid
	}
}

// BatchInput datos para un lote nuevo.
type BatchInput struct {
	SKU              string
	LotNumber        string
	ExpiryDate       time.Time
	OriginalQuantity int
}

// BatchPatch cambios sobre un lote; nil conserva el valor.
type BatchPatch struct {
	SKU              *string
	LotNumber        *string
	ExpiryDate       *time.Time
	OriginalQuantity *int
	CurrentQuantity  *int
}

// BatchConsumption cantidad descontada de un lote.
type BatchConsumption = entity.BatchConsumption

// BatchTracker libro de lotes perecibles, el más reciente primero.
type BatchTracker struct {
	batches  []entity.Batch
	nearDays int
	now      Clock
	newID    IDGenerator
}

// NewBatchTracker construye el libro de lotes. nearDays <= 0 usa DefaultNearExpiryDays.
func NewBatchTracker(batches []entity.Batch, nearDays int, now Clock, newID IDGenerator) *BatchTracker {
	if nearDays <= 0 {
		nearDays = DefaultNearExpiryDays
	}
	bs := make([]entity.Batch, len(batches))
	copy(bs, batches)
	return &BatchTracker{batches: bs, nearDays: nearDays, now: now, newID: newID}
}

// Add registra un lote con la cantidad actual igual a la original y su estado calculado.
func (t *BatchTracker) Add(in BatchInput) entity.Batch {
	now := t.now()
	b := entity.Batch{
		ID:               t.newID(),
		SKU:              in.SKU,
		LotNumber:        in.LotNumber,
		ExpiryDate:       in.ExpiryDate,
		OriginalQuantity: in.OriginalQuantity,
		CurrentQuantity:  in.OriginalQuantity,
		Status:           BatchStatusFor(in.ExpiryDate, now, t.nearDays),
		CreatedAt:        now,
	}
	t.batches = append([]entity.Batch{b}, t.batches...)
	return b
}

// Update aplica el patch; el estado se recalcula solo si cambia el vencimiento.
func (t *BatchTracker) Update(id string, p BatchPatch) (entity.Batch, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return entity.Batch{}, false
	}
	b := &t.batches[i]
	if p.SKU != nil {
		b.SKU = *p.SKU
	}
	if p.LotNumber != nil {
		b.LotNumber = *p.LotNumber
	}
	if p.OriginalQuantity != nil {
		b.OriginalQuantity = *p.OriginalQuantity
	}
	if p.CurrentQuantity != nil {
		b.CurrentQuantity = *p.CurrentQuantity
	}
	if p.ExpiryDate != nil {
		b.ExpiryDate = *p.ExpiryDate
		b.Status = BatchStatusFor(b.ExpiryDate, t.now(), t.nearDays)
	}
	return *b, true
}

// Delete quita un lote.
func (t *BatchTracker) Delete(id string) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.batches = append(t.batches[:i:i], t.batches[i+1:]...)
	return true
}

// Sweep recalcula el estado de todos los lotes con la fecha actual y devuelve cuántos cambiaron.
func (t *BatchTracker) Sweep() int {
	today := t.now()
	changed := 0
	for i := range t.batches {
		st := BatchStatusFor(t.batches[i].ExpiryDate, today, t.nearDays)
		if st != t.batches[i].Status {
			t.batches[i].Status = st
			changed++
		}
	}
	return changed
}

// ConsumeFIFO descuenta qty de los lotes no vencidos del SKU en orden de vencimiento.
// Devuelve lo descontado por lote y lo que no pudo cubrirse.
func (t *BatchTracker) ConsumeFIFO(sku string, qty int) ([]BatchConsumption, int) {
	today := t.now()
	var idx []int
	for i, b := range t.batches {
		if b.SKU == sku && b.CurrentQuantity > 0 && BatchStatusFor(b.ExpiryDate, today, t.nearDays) != entity.BatchStatusExpired {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return t.batches[idx[a]].ExpiryDate.Before(t.batches[idx[b]].ExpiryDate)
	})
	var out []BatchConsumption
	remaining := qty
	for _, i := range idx {
		if remaining <= 0 {
			break
		}
		b := &t.batches[i]
		take := min(b.CurrentQuantity, remaining)
		b.CurrentQuantity -= take
		remaining -= take
		out = append(out, BatchConsumption{BatchID: b.ID, LotNumber: b.LotNumber, Quantity: take})
	}
	return out, remaining
}

// Restore devuelve a cada lote lo que un movimiento le había descontado. Devuelve las
// unidades que no volvieron a ningún lote porque este ya fue eliminado.
func (t *BatchTracker) Restore(uses []BatchConsumption) int {
	lost := 0
	for _, u := range uses {
		i := t.indexOf(u.BatchID)
		if i < 0 {
			lost += u.Quantity
			continue
		}
		t.batches[i].CurrentQuantity += u.Quantity
	}
	return lost
}

// Find busca un lote por ID.
func (t *BatchTracker) Find(id string) (entity.Batch, bool) {
	if i := t.indexOf(id); i >= 0 {
		return t.batches[i], true
	}
	return entity.Batch{}, false
}

// Batches copia de los lotes.
func (t *BatchTracker) Batches() []entity.Batch {
	out := make([]entity.Batch, len(t.batches))
	copy(out, t.batches)
	return out
}

func (t *BatchTracker) indexOf(id string) int {
	for i := range t.batches {
		if t.batches[i].ID == id {
			return i
		}
	}
	return -1
}
