package inventory

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// Effect delta con signo sobre un slot.
type Effect struct {
	Key   entity.SlotKey
	Delta int
}

// AppliedEffect efecto aplicado junto con lo que hizo el snapshot con él.
type AppliedEffect struct {
	Effect
	Outcome DeltaOutcome
}

// Effects efectos de stock de un movimiento, cada pata con su propia ubicación.
// Entrada: +q. Salida: -q. Traslado local: -q en origen y +q en destino.
// Traslado externo: solo -q en origen.
func Effects(m entity.MovementRecord) []Effect {
	q := m.Quantity
	switch d := m.Details.(type) {
	case entity.InboundDetails:
		return []Effect{{Key: entity.SlotKey{SKU: m.SKU, Warehouse: m.Warehouse, Location: d.Location}, Delta: q}}
	case entity.OutboundDetails:
		return []Effect{{Key: entity.SlotKey{SKU: m.SKU, Warehouse: m.Warehouse, Location: d.Location}, Delta: -q}}
	case entity.LocalTransferDetails:
		out := []Effect{{Key: entity.SlotKey{SKU: m.SKU, Warehouse: m.Warehouse, Location: d.OriginLocation}, Delta: -q}}
		if d.DestinationWarehouse != "" {
			out = append(out, Effect{Key: entity.SlotKey{SKU: m.SKU, Warehouse: d.DestinationWarehouse, Location: d.DestinationLocation}, Delta: q})
		}
		return out
	case entity.ExternalTransferDetails:
		return []Effect{{Key: entity.SlotKey{SKU: m.SKU, Warehouse: m.Warehouse, Location: d.OriginLocation}, Delta: -q}}
	}
	return nil
}

// Inverse efectos con el signo invertido.
func Inverse(effects []Effect) []Effect {
	out := make([]Effect, len(effects))
	for i, e := range effects {
		out[i] = Effect{Key: e.Key, Delta: -e.Delta}
	}
	return out
}

func (s *Snapshot) applyAll(effects []Effect) []AppliedEffect {
	out := make([]AppliedEffect, 0, len(effects))
	for _, e := range effects {
		out = append(out, AppliedEffect{Effect: e, Outcome: s.ApplyDelta(e.Key, e.Delta)})
	}
	return out
}
