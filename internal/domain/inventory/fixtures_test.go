package inventory_test

import (
	"fmt"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

const (
	skuArroz  = "PROD-001"
	skuLeche  = "PROD-002"
	central   = "Central"
	norte     = "Norte"
	sur       = "Sur"
	threshold = 20
)

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testCatalog() inventory.Catalog {
	return inventory.NewCatalog([]entity.CatalogItem{
		{ID: "c1", SKU: skuArroz, Name: "Arroz Extra 5kg", Category: "Abarrotes", Status: entity.CatalogStatusActive},
		{ID: "c2", SKU: skuLeche, Name: "Leche Evaporada", Category: "Lácteos", Perishable: true, Status: entity.CatalogStatusActive},
	})
}

func fixedClock() time.Time { return testToday }

// seqIDs generador determinístico de IDs para los tests.
func seqIDs(prefix string) inventory.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

func key(sku, wh, loc string) entity.SlotKey {
	return entity.SlotKey{SKU: sku, Warehouse: wh, Location: loc}
}

// ledgerWith arma un historial vacío sobre un snapshot con los slots indicados.
func ledgerWith(slots ...entity.StockSlot) *inventory.Ledger {
	snap := inventory.NewSnapshot(testCatalog(), slots, threshold)
	return inventory.NewLedger(snap, nil, fixedClock, seqIDs("mov"))
}

func slot(sku, wh, loc string, qty int) entity.StockSlot {
	return entity.StockSlot{SKU: sku, Warehouse: wh, Location: loc, Quantity: qty, Status: inventory.StatusFor(qty, threshold)}
}

func ptr[T any](v T) *T { return &v }
