package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro, edición y eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SalidaYEliminacionRestauranStock(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50))
	k := key(skuArroz, central, "")

	rec, applied := l.Register(inventory.MovementInput{
		SKU: skuArroz, Quantity: 40, Warehouse: central,
		Details: entity.OutboundDetails{},
	})
	require.Len(t, applied, 1)
	assert.Equal(t, inventory.DeltaApplied, applied[0].Outcome)

	got, _ := l.Snapshot().Get(k)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, entity.SlotStatusLow, got.Status)

	_, _, ok := l.Delete(rec.ID)
	require.True(t, ok)

	got, _ = l.Snapshot().Get(k)
	assert.Equal(t, 50, got.Quantity)
	assert.Equal(t, entity.SlotStatusAvailable, got.Status)
	_, found := l.Find(rec.ID)
	assert.False(t, found, "el registro eliminado no debe seguir en el historial")
}

func TestLedger_RegistroAsignaIDFechaYVaPrimero(t *testing.T) {
	l := ledgerWith()

	first, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 5, Warehouse: central, Details: entity.InboundDetails{}})
	second, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 7, Warehouse: central, Details: entity.InboundDetails{}})

	assert.Equal(t, "mov-001", first.ID)
	assert.Equal(t, testToday, first.Timestamp)
	recs := l.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].ID, "el más reciente va primero")
	assert.Equal(t, 12, l.Snapshot().Quantity(key(skuArroz, central, "")))
}

func TestLedger_EdicionRevierteYAplica(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50))
	k := key(skuArroz, central, "")

	rec, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 10, Warehouse: central, Details: entity.OutboundDetails{}})
	require.Equal(t, 40, l.Snapshot().Quantity(k))

	updated, _, ok := l.Update(rec.ID, inventory.MovementPatch{Quantity: ptr(30)})
	require.True(t, ok)
	assert.Equal(t, 20, l.Snapshot().Quantity(k))
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, rec.Timestamp, updated.Timestamp)

	// repetir la misma edición no cambia nada
	_, _, ok = l.Update(rec.ID, inventory.MovementPatch{Quantity: ptr(30)})
	require.True(t, ok)
	assert.Equal(t, 20, l.Snapshot().Quantity(k))
}

func TestLedger_EdicionCambiaBodegaConSuPropioRuteo(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50), slot(skuArroz, norte, "", 50))

	rec, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 10, Warehouse: central, Details: entity.OutboundDetails{}})
	_, _, ok := l.Update(rec.ID, inventory.MovementPatch{Warehouse: ptr(norte)})
	require.True(t, ok)

	assert.Equal(t, 50, l.Snapshot().Quantity(key(skuArroz, central, "")), "la reversión usa la bodega original")
	assert.Equal(t, 40, l.Snapshot().Quantity(key(skuArroz, norte, "")))
}

func TestLedger_EdicionYEliminacionDeIDInexistente(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50))

	_, _, ok := l.Update("nope", inventory.MovementPatch{Quantity: ptr(1)})
	assert.False(t, ok)
	_, _, ok = l.Delete("nope")
	assert.False(t, ok)
	assert.Equal(t, 50, l.Snapshot().Quantity(key(skuArroz, central, "")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterTransfer_LocalMueveEntreBodegas(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50))

	rec, applied := l.RegisterTransfer(inventory.TransferInput{
		SKU: skuArroz, Quantity: 20, OriginWarehouse: central, DestinationWarehouse: norte, IsLocal: true,
	})

	require.Len(t, applied, 2)
	assert.Equal(t, inventory.DeltaApplied, applied[0].Outcome)
	assert.Equal(t, inventory.DeltaCreated, applied[1].Outcome)
	assert.Equal(t, entity.MovementKindTransfer, rec.Kind())
	assert.Equal(t, entity.TransferLocal, rec.Subtype())
	assert.Equal(t, norte, rec.DestinationWarehouse())
	assert.Equal(t, 30, l.Snapshot().Quantity(key(skuArroz, central, "")))

	dest, ok := l.Snapshot().Get(key(skuArroz, norte, ""))
	require.True(t, ok)
	assert.Equal(t, 20, dest.Quantity)
	assert.Equal(t, entity.SlotStatusAvailable, dest.Status)
}

func TestRegisterTransfer_ExternoSoloDescuentaOrigen(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "", 50))

	rec, applied := l.RegisterTransfer(inventory.TransferInput{
		SKU: skuArroz, Quantity: 10, OriginWarehouse: central, ExternalDestination: "Cliente Lima SAC",
	})

	require.Len(t, applied, 1)
	assert.Equal(t, entity.TransferExternal, rec.Subtype())
	assert.Empty(t, rec.DestinationWarehouse())
	assert.Equal(t, 40, l.Snapshot().Quantity(key(skuArroz, central, "")))
	assert.Equal(t, 1, l.Snapshot().Len(), "no debe crearse ningún slot destino")
}

func TestRegisterTransfer_UbicacionesPorPata(t *testing.T) {
	l := ledgerWith(slot(skuArroz, central, "A-01", 30))

	rec, _ := l.RegisterTransfer(inventory.TransferInput{
		SKU: skuArroz, Quantity: 5, OriginWarehouse: central, OriginLocation: "A-01",
		DestinationWarehouse: sur, DestinationLocation: "C-02", IsLocal: true,
	})

	assert.Equal(t, 25, l.Snapshot().Quantity(key(skuArroz, central, "A-01")))
	assert.Equal(t, 5, l.Snapshot().Quantity(key(skuArroz, sur, "C-02")))

	_, _, ok := l.Delete(rec.ID)
	require.True(t, ok)
	assert.Equal(t, 30, l.Snapshot().Quantity(key(skuArroz, central, "A-01")))
	assert.Equal(t, 0, l.Snapshot().Quantity(key(skuArroz, sur, "C-02")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Conservación
// ──────────────────────────────────────────────────────────────────────────────

func TestReplay_CoincideConSnapshotVivo(t *testing.T) {
	l := ledgerWith()

	in, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 100, Warehouse: central, Details: entity.InboundDetails{}})
	l.Register(inventory.MovementInput{SKU: skuLeche, Quantity: 40, Warehouse: norte, Details: entity.InboundDetails{Location: "F-01"}})
	out, _ := l.Register(inventory.MovementInput{SKU: skuArroz, Quantity: 30, Warehouse: central, Details: entity.OutboundDetails{}})
	l.RegisterTransfer(inventory.TransferInput{SKU: skuArroz, Quantity: 20, OriginWarehouse: central, DestinationWarehouse: norte, IsLocal: true})
	ext, _ := l.RegisterTransfer(inventory.TransferInput{SKU: skuLeche, Quantity: 5, OriginWarehouse: norte, OriginLocation: "F-01", ExternalDestination: "Merma"})
	_, _, _ = l.Update(out.ID, inventory.MovementPatch{Quantity: ptr(25)})
	_, _, _ = l.Update(in.ID, inventory.MovementPatch{Quantity: ptr(120)})
	_, _, _ = l.Delete(ext.ID)

	replayed := inventory.Replay(testCatalog(), l.Records(), threshold)

	assert.Equal(t, nonZero(l.Snapshot()), nonZero(replayed))
	assert.Equal(t, 75, l.Snapshot().Quantity(key(skuArroz, central, "")))
	assert.Equal(t, 20, l.Snapshot().Quantity(key(skuArroz, norte, "")))
	assert.Equal(t, 40, l.Snapshot().Quantity(key(skuLeche, norte, "F-01")))
}

func nonZero(s *inventory.Snapshot) map[entity.SlotKey]int {
	out := map[entity.SlotKey]int{}
	for _, sl := range s.Slots() {
		if sl.Quantity != 0 {
			out[sl.Key()] = sl.Quantity
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestShortfalls_Registro(t *testing.T) {
	snap := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 50)}, threshold)
	rec := entity.MovementRecord{SKU: skuArroz, Quantity: 60, Warehouse: central, Details: entity.OutboundDetails{}}

	got := inventory.Shortfalls(snap, nil, inventory.Effects(rec))

	require.Len(t, got, 1)
	assert.Equal(t, 50, got[0].Available)
	assert.Equal(t, 60, got[0].Requested)

	rec.Quantity = 50
	assert.Empty(t, inventory.Shortfalls(snap, nil, inventory.Effects(rec)))
}

func TestShortfalls_EdicionRecuperaLoConsumido(t *testing.T) {
	snap := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 10)}, threshold)
	old := entity.MovementRecord{SKU: skuArroz, Quantity: 40, Warehouse: central, Details: entity.OutboundDetails{}}

	ok := inventory.Merge(old, inventory.MovementPatch{Quantity: ptr(45)})
	tooMuch := inventory.Merge(old, inventory.MovementPatch{Quantity: ptr(55)})

	assert.Empty(t, inventory.Shortfalls(snap, inventory.Effects(old), inventory.Effects(ok)))
	got := inventory.Shortfalls(snap, inventory.Effects(old), inventory.Effects(tooMuch))
	require.Len(t, got, 1)
	assert.Equal(t, 50, got[0].Available)
}

func TestShortfalls_EliminarEntradaYaConsumida(t *testing.T) {
	snap := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 10)}, threshold)
	in := entity.MovementRecord{SKU: skuArroz, Quantity: 50, Warehouse: central, Details: entity.InboundDetails{}}

	got := inventory.Shortfalls(snap, nil, inventory.Inverse(inventory.Effects(in)))

	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Available)
	assert.Equal(t, 50, got[0].Requested)
}

func TestShortfalls_EdicionQueSoloDebitaAlRevertir(t *testing.T) {
	// Entrada de 50 en Central de la que ya salieron 40; moverla a Norte retira 50 de Central.
	snap := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 10)}, threshold)
	old := entity.MovementRecord{SKU: skuArroz, Quantity: 50, Warehouse: central, Details: entity.InboundDetails{}}
	moved := inventory.Merge(old, inventory.MovementPatch{Warehouse: ptr(norte)})

	got := inventory.Shortfalls(snap, inventory.Effects(old), inventory.Effects(moved))

	require.Len(t, got, 1)
	assert.Equal(t, key(skuArroz, central, ""), got[0].Key)
	assert.Equal(t, 10, got[0].Available)
	assert.Equal(t, 50, got[0].Requested)

	// Reducir la entrada a 15 deja Central en 0: no hay faltante.
	shrunk := inventory.Merge(old, inventory.MovementPatch{Quantity: ptr(15)})
	assert.Empty(t, inventory.Shortfalls(snap, inventory.Effects(old), inventory.Effects(shrunk)))
	shrunk = inventory.Merge(old, inventory.MovementPatch{Quantity: ptr(14)})
	assert.Len(t, inventory.Shortfalls(snap, inventory.Effects(old), inventory.Effects(shrunk)), 1)
}

func TestShortfalls_EliminarEquivaleARevertir(t *testing.T) {
	snap := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 10)}, threshold)
	in := entity.MovementRecord{SKU: skuArroz, Quantity: 50, Warehouse: central, Details: entity.InboundDetails{}}

	assert.Equal(t,
		inventory.Shortfalls(snap, nil, inventory.Inverse(inventory.Effects(in))),
		inventory.Shortfalls(snap, inventory.Effects(in), nil))
}
