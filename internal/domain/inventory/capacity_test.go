package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

func TestRecomputeCapacities_SumaPorBodegaYCodigo(t *testing.T) {
	locations := []entity.Location{
		{ID: "l1", Warehouse: central, Code: "A-01", CapacityMax: 100, CapacityCurrent: 99},
		{ID: "l2", Warehouse: norte, Code: "A-01", CapacityMax: 100},
		{ID: "l3", Warehouse: sur, Code: "B-01", CapacityMax: 100, CapacityCurrent: 7},
	}
	slots := []entity.StockSlot{
		slot(skuArroz, central, "A-01", 10),
		slot(skuLeche, central, "A-01", 5),
		slot(skuArroz, norte, "A-01", 7),
		slot(skuArroz, central, "", 500),
	}

	got := inventory.RecomputeCapacities(locations, slots)

	assert.Equal(t, 15, got[0].CapacityCurrent)
	assert.Equal(t, 7, got[1].CapacityCurrent, "el código se resuelve dentro de su bodega")
	assert.Equal(t, 0, got[2].CapacityCurrent)
	assert.Equal(t, 99, locations[0].CapacityCurrent, "la entrada no se modifica")
	assert.Equal(t, got, inventory.RecomputeCapacities(got, slots), "recalcular dos veces no cambia el resultado")
}
