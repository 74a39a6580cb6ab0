package inventory

import (
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// Clock fuente de la hora actual.
type Clock func() time.Time

// IDGenerator genera identificadores únicos para registros nuevos.
type IDGenerator func() string

// MovementInput datos para registrar un movimiento.
type MovementInput struct {
	SKU       string
	Quantity  int
	Warehouse string
	Meta      entity.MovementMeta
	Details   entity.MovementDetails
}

// MovementPatch cambios sobre un movimiento existente. Los campos nil conservan el valor
// anterior; Details nil conserva tipo, subtipo y ruteo del registro original.
type MovementPatch struct {
	SKU       *string
	Quantity  *int
	Warehouse *string
	Meta      *entity.MovementMeta
	Details   entity.MovementDetails
}

// Ledger historial de movimientos, el más reciente primero. Cada operación ajusta el
// snapshot mediante ApplyDelta de modo que el stock refleja siempre los registros vivos.
type Ledger struct {
	snapshot *Snapshot
	records  []entity.MovementRecord
	now      Clock
	newID    IDGenerator
}

// NewLedger construye el historial sobre registros ya persistidos (sus efectos se asumen
// incluidos en el snapshot).
func NewLedger(snapshot *Snapshot, records []entity.MovementRecord, now Clock, newID IDGenerator) *Ledger {
	recs := make([]entity.MovementRecord, len(records))
	copy(recs, records)
	return &Ledger{snapshot: snapshot, records: recs, now: now, newID: newID}
}

// Register crea un registro con ID y fecha nuevos, lo antepone al historial y aplica su efecto.
// No verifica disponibilidad: eso corresponde al caller.
func (l *Ledger) Register(in MovementInput) (entity.MovementRecord, []AppliedEffect) {
	rec := entity.MovementRecord{
		ID:        l.newID(),
		Timestamp: l.now(),
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Warehouse: in.Warehouse,
		Meta:      in.Meta,
		Details:   in.Details,
	}
	l.records = append([]entity.MovementRecord{rec}, l.records...)
	return rec, l.snapshot.applyAll(Effects(rec))
}

// Update revierte el efecto del registro original con su propio ruteo, aplica el del
// registro combinado y reemplaza los campos guardados. ID y fecha se conservan.
// Si el ID no existe no hace nada y devuelve ok=false.
func (l *Ledger) Update(id string, patch MovementPatch) (rec entity.MovementRecord, applied []AppliedEffect, ok bool) {
	i := l.indexOf(id)
	if i < 0 {
		return entity.MovementRecord{}, nil, false
	}
	old := l.records[i]
	merged := Merge(old, patch)

	applied = l.snapshot.applyAll(Inverse(Effects(old)))
	applied = append(applied, l.snapshot.applyAll(Effects(merged))...)
	l.records[i] = merged
	return merged, applied, true
}

// Delete revierte el efecto del registro y lo quita del historial.
// Si el ID no existe no hace nada y devuelve ok=false.
func (l *Ledger) Delete(id string) (rec entity.MovementRecord, applied []AppliedEffect, ok bool) {
	i := l.indexOf(id)
	if i < 0 {
		return entity.MovementRecord{}, nil, false
	}
	rec = l.records[i]
	applied = l.snapshot.applyAll(Inverse(Effects(rec)))
	l.records = append(l.records[:i:i], l.records[i+1:]...)
	return rec, applied, true
}

// SetBatchUses reemplaza los consumos de lotes asociados al registro.
func (l *Ledger) SetBatchUses(id string, uses []entity.BatchConsumption) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.records[i].BatchUses = uses
	return true
}

// Find busca un registro por ID.
func (l *Ledger) Find(id string) (entity.MovementRecord, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.records[i], true
	}
	return entity.MovementRecord{}, false
}

// Records copia del historial, el más reciente primero.
func (l *Ledger) Records() []entity.MovementRecord {
	out := make([]entity.MovementRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Snapshot snapshot sobre el que opera el historial.
func (l *Ledger) Snapshot() *Snapshot { return l.snapshot }

func (l *Ledger) indexOf(id string) int {
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

// Merge aplica el patch sobre una copia del registro.
func Merge(old entity.MovementRecord, patch MovementPatch) entity.MovementRecord {
	merged := old
	if patch.SKU != nil {
		merged.SKU = *patch.SKU
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Warehouse != nil {
		merged.Warehouse = *patch.Warehouse
	}
	if patch.Meta != nil {
		merged.Meta = *patch.Meta
	}
	if patch.Details != nil {
		merged.Details = patch.Details
	}
	return merged
}

// Replay reconstruye un snapshot desde cero aplicando los registros del más antiguo al más
// reciente. Sirve para verificar que el snapshot vivo coincide con el historial.
func Replay(catalog CatalogLookup, records []entity.MovementRecord, lowThreshold int) *Snapshot {
	s := NewSnapshot(catalog, nil, lowThreshold)
	for i := len(records) - 1; i >= 0; i-- {
		s.applyAll(Effects(records[i]))
	}
	return s
}
