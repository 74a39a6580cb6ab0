package report

import (
	"context"
	"sort"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
)

// UseCase genera el reporte de stock a partir del snapshot vigente.
type UseCase struct {
	runner    appinventory.StateRunner
	generator StockReportGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner appinventory.StateRunner, generator StockReportGenerator, now func() time.Time) *UseCase {
	return &UseCase{runner: runner, generator: generator, now: now}
}

// Build arma los datos del reporte, filtrando por bodega si se indica.
// Los slots se ordenan por bodega, SKU y ubicación.
func (uc *UseCase) Build(ctx context.Context, warehouse string) (StockReport, error) {
	r := StockReport{
		Title:       "Reporte de Stock",
		Warehouse:   warehouse,
		GeneratedAt: uc.now(),
		ByStatus:    map[entity.SlotStatus]int{},
	}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, s := range agg.Snapshot().Slots() {
			if warehouse != "" && s.Warehouse != warehouse {
				continue
			}
			r.Slots = append(r.Slots, s)
			r.TotalUnits += s.Quantity
			r.ByStatus[s.Status]++
		}
		return nil
	})
	if err != nil {
		return StockReport{}, err
	}
	sort.SliceStable(r.Slots, func(i, j int) bool {
		a, b := r.Slots[i], r.Slots[j]
		if a.Warehouse != b.Warehouse {
			return a.Warehouse < b.Warehouse
		}
		if a.SKU != b.SKU {
			return a.SKU < b.SKU
		}
		return a.Location < b.Location
	})
	return r, nil
}

// StockPDF genera el PDF del reporte.
func (uc *UseCase) StockPDF(ctx context.Context, warehouse string) ([]byte, error) {
	r, err := uc.Build(ctx, warehouse)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, r)
}
