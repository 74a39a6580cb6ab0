package report

import (
	"context"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

// StockReport datos para el reporte de stock.
type StockReport struct {
	Title       string
	Warehouse   string // vacío = todas las bodegas
	GeneratedAt time.Time
	Slots       []entity.StockSlot
	TotalUnits  int
	ByStatus    map[entity.SlotStatus]int
}

// StockReportGenerator puerto para renderizar el reporte (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, r StockReport) ([]byte, error)
}
