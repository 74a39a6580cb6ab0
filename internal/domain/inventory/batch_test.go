package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

const day = 24 * time.Hour

func TestBatchStatusFor_Limites(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   entity.BatchStatus
	}{
		{"ayer", testToday.Add(-day), entity.BatchStatusExpired},
		{"hoy", testToday, entity.BatchStatusNearExpiry},
		{"medio día redondea hacia arriba", testToday.Add(12 * time.Hour), entity.BatchStatusNearExpiry},
		{"30 días", testToday.Add(30 * day), entity.BatchStatusNearExpiry},
		{"30 días y una hora", testToday.Add(30*day + time.Hour), entity.BatchStatusValid},
		{"31 días", testToday.Add(31 * day), entity.BatchStatusValid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.BatchStatusFor(tc.expiry, testToday, inventory.DefaultNearExpiryDays))
		})
	}
}

func TestBatchTracker_AddInicializaCantidadYEstado(t *testing.T) {
	tr := inventory.NewBatchTracker(nil, 0, fixedClock, seqIDs("lote"))

	b := tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "L-2024001", ExpiryDate: testToday.Add(10 * day), OriginalQuantity: 100})

	assert.Equal(t, "lote-001", b.ID)
	assert.Equal(t, 100, b.CurrentQuantity)
	assert.Equal(t, entity.BatchStatusNearExpiry, b.Status)
	assert.Equal(t, testToday, b.CreatedAt)
	assert.Len(t, tr.Batches(), 1)
}

func TestBatchTracker_UpdateRecalculaSoloConVencimiento(t *testing.T) {
	tr := inventory.NewBatchTracker(nil, 30, fixedClock, seqIDs("lote"))
	b := tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "L-1", ExpiryDate: testToday.Add(90 * day), OriginalQuantity: 50})

	got, ok := tr.Update(b.ID, inventory.BatchPatch{CurrentQuantity: ptr(20)})
	require.True(t, ok)
	assert.Equal(t, 20, got.CurrentQuantity)
	assert.Equal(t, entity.BatchStatusValid, got.Status)

	got, ok = tr.Update(b.ID, inventory.BatchPatch{ExpiryDate: ptr(testToday.Add(-2 * day))})
	require.True(t, ok)
	assert.Equal(t, entity.BatchStatusExpired, got.Status)

	_, ok = tr.Update("nope", inventory.BatchPatch{})
	assert.False(t, ok)
}

func TestBatchTracker_SweepAvanzaConElReloj(t *testing.T) {
	now := testToday
	clock := func() time.Time { return now }
	tr := inventory.NewBatchTracker(nil, 30, clock, seqIDs("lote"))
	tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "L-1", ExpiryDate: testToday.Add(40 * day), OriginalQuantity: 10})
	tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "L-2", ExpiryDate: testToday.Add(5 * day), OriginalQuantity: 10})

	assert.Equal(t, 0, tr.Sweep())

	now = testToday.Add(15 * day)
	assert.Equal(t, 2, tr.Sweep())

	byLot := map[string]entity.BatchStatus{}
	for _, b := range tr.Batches() {
		byLot[b.LotNumber] = b.Status
	}
	assert.Equal(t, entity.BatchStatusNearExpiry, byLot["L-1"])
	assert.Equal(t, entity.BatchStatusExpired, byLot["L-2"])
}

func TestBatchTracker_ConsumeFIFOPorVencimiento(t *testing.T) {
	tr := inventory.NewBatchTracker(nil, 30, fixedClock, seqIDs("lote"))
	tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "TARDE", ExpiryDate: testToday.Add(60 * day), OriginalQuantity: 10})
	tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "PRONTO", ExpiryDate: testToday.Add(5 * day), OriginalQuantity: 4})
	tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "VENCIDO", ExpiryDate: testToday.Add(-1 * day), OriginalQuantity: 50})

	used, missing := tr.ConsumeFIFO(skuLeche, 6)

	assert.Equal(t, 0, missing)
	require.Len(t, used, 2)
	assert.Equal(t, "PRONTO", used[0].LotNumber)
	assert.Equal(t, 4, used[0].Quantity)
	assert.Equal(t, "TARDE", used[1].LotNumber)
	assert.Equal(t, 2, used[1].Quantity)

	_, missing = tr.ConsumeFIFO(skuLeche, 100)
	assert.Equal(t, 92, missing, "los lotes vencidos no se consumen")
}

func TestBatchTracker_Delete(t *testing.T) {
	tr := inventory.NewBatchTracker(nil, 30, fixedClock, seqIDs("lote"))
	b := tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "L-1", ExpiryDate: testToday, OriginalQuantity: 1})

	assert.True(t, tr.Delete(b.ID))
	assert.False(t, tr.Delete(b.ID))
	assert.Empty(t, tr.Batches())
}

func TestBatchTracker_RestoreDevuelveLoConsumido(t *testing.T) {
	tr := inventory.NewBatchTracker(nil, 30, fixedClock, seqIDs("lote"))
	a := tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "A", ExpiryDate: testToday.Add(10 * day), OriginalQuantity: 5})
	b := tr.Add(inventory.BatchInput{SKU: skuLeche, LotNumber: "B", ExpiryDate: testToday.Add(40 * day), OriginalQuantity: 5})

	used, _ := tr.ConsumeFIFO(skuLeche, 7)
	require.Len(t, used, 2)

	assert.Equal(t, 0, tr.Restore(used))
	got, _ := tr.Find(a.ID)
	assert.Equal(t, 5, got.CurrentQuantity)
	got, _ = tr.Find(b.ID)
	assert.Equal(t, 5, got.CurrentQuantity)

	// Un lote eliminado no recibe devolución; se informa lo que no volvió.
	used, _ = tr.ConsumeFIFO(skuLeche, 7)
	require.True(t, tr.Delete(b.ID))
	assert.Equal(t, 2, tr.Restore(used))
	got, _ = tr.Find(a.ID)
	assert.Equal(t, 5, got.CurrentQuantity)
}
