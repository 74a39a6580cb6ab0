package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor_Umbrales(t *testing.T) {
	cases := []struct {
		qty  int
		want entity.SlotStatus
	}{
		{-5, entity.SlotStatusOutOfStock},
		{0, entity.SlotStatusOutOfStock},
		{1, entity.SlotStatusLow},
		{19, entity.SlotStatusLow},
		{20, entity.SlotStatusAvailable},
		{500, entity.SlotStatusAvailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.StatusFor(tc.qty, threshold), "cantidad %d", tc.qty)
	}
}

func TestNewSnapshot_UmbralPorDefecto(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), nil, 0)
	assert.Equal(t, inventory.DefaultLowStockThreshold, s.LowThreshold())
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_SlotExistenteAjustaYRecalculaEstado(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 50)}, threshold)

	out := s.ApplyDelta(key(skuArroz, central, ""), -40)

	assert.Equal(t, inventory.DeltaApplied, out)
	got, ok := s.Get(key(skuArroz, central, ""))
	require.True(t, ok)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, entity.SlotStatusLow, got.Status)
}

func TestApplyDelta_PermiteNegativoEnSlotExistente(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), []entity.StockSlot{slot(skuArroz, central, "", 5)}, threshold)

	assert.Equal(t, inventory.DeltaApplied, s.ApplyDelta(key(skuArroz, central, ""), -8))
	got, _ := s.Get(key(skuArroz, central, ""))
	assert.Equal(t, -3, got.Quantity)
	assert.Equal(t, entity.SlotStatusOutOfStock, got.Status)
}

func TestApplyDelta_CreaSlotConDatosDelCatalogo(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), nil, threshold)

	out := s.ApplyDelta(key(skuLeche, norte, "A-01"), 12)

	assert.Equal(t, inventory.DeltaCreated, out)
	got, ok := s.Get(key(skuLeche, norte, "A-01"))
	require.True(t, ok)
	assert.Equal(t, "Leche Evaporada", got.Name)
	assert.Equal(t, 12, got.Quantity)
	assert.Equal(t, entity.SlotStatusLow, got.Status)
	assert.True(t, got.PricePEN.IsZero())
	assert.True(t, got.PriceUSD.IsZero())
}

func TestApplyDelta_DescartesSonExplicitos(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), nil, threshold)

	unknown := s.ApplyDelta(key("NO-EXISTE", central, ""), 10)
	missing := s.ApplyDelta(key(skuArroz, central, ""), -10)
	zero := s.ApplyDelta(key(skuArroz, central, ""), 0)

	assert.Equal(t, inventory.DeltaDroppedUnknownSKU, unknown)
	assert.Equal(t, inventory.DeltaDroppedMissingSlot, missing)
	assert.Equal(t, inventory.DeltaDroppedMissingSlot, zero)
	assert.True(t, unknown.Dropped())
	assert.True(t, missing.Dropped())
	assert.Equal(t, 0, s.Len(), "ningún descarte debe crear slots")
}

func TestSnapshot_UbicacionVaciaEsClaveDistinta(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), nil, threshold)
	s.ApplyDelta(key(skuArroz, central, ""), 30)
	s.ApplyDelta(key(skuArroz, central, "A-01"), 5)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 30, s.Quantity(key(skuArroz, central, "")))
	assert.Equal(t, 5, s.Quantity(key(skuArroz, central, "A-01")))
}

func TestSnapshot_SlotsNuncaSeEliminan(t *testing.T) {
	s := inventory.NewSnapshot(testCatalog(), nil, threshold)
	s.ApplyDelta(key(skuArroz, central, ""), 10)
	s.ApplyDelta(key(skuArroz, central, ""), -10)

	got, ok := s.Get(key(skuArroz, central, ""))
	require.True(t, ok, "un slot en cero sigue existiendo")
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, entity.SlotStatusOutOfStock, got.Status)
}
