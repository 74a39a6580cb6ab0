package inventory

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

type locationKey struct {
	warehouse string
	code      string
}

// RecomputeCapacities devuelve una copia de las ubicaciones con CapacityCurrent igual a la
// suma de las cantidades de los slots ruteados a (bodega, código). Es pura e idempotente:
// no modifica slots, ubicaciones de entrada ni el historial.
func RecomputeCapacities(locations []entity.Location, slots []entity.StockSlot) []entity.Location {
	totals := make(map[locationKey]int)
	for _, s := range slots {
		if s.Location == "" {
			continue
		}
		totals[locationKey{warehouse: s.Warehouse, code: s.Location}] += s.Quantity
	}
	out := make([]entity.Location, len(locations))
	for i, loc := range locations {
		loc.CapacityCurrent = totals[locationKey{warehouse: loc.Warehouse, code: loc.Code}]
		out[i] = loc
	}
	return out
}
