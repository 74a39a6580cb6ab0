package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/application/report"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "0", formatUnits(0))
	assert.Equal(t, "999", formatUnits(999))
	assert.Equal(t, "25.000", formatUnits(25000))
	assert.Equal(t, "1.000.000", formatUnits(1000000))
	assert.Equal(t, "-1.200", formatUnits(-1200))
}

func TestGenerateStockReport_DevuelvePDF(t *testing.T) {
	r := report.StockReport{
		Title:       "Reporte de Stock",
		GeneratedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Slots: []entity.StockSlot{
			{SKU: "PROD-001", Name: "Pallets Plásticos HD", Warehouse: "Central", Quantity: 50, Status: entity.SlotStatusAvailable},
			{SKU: "PROD-002", Name: "Film Stretch 50cm", Warehouse: "Norte", Location: "A-01", Quantity: 3, Status: entity.SlotStatusLow},
		},
		TotalUnits: 53,
		ByStatus:   map[entity.SlotStatus]int{entity.SlotStatusAvailable: 1, entity.SlotStatusLow: 1},
	}

	out, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), r)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
