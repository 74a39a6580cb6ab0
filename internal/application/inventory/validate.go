package inventory

import (
	"fmt"
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

// validateRecord valida un movimiento completo (nuevo o combinado tras una edición) antes de
// tocar el snapshot. Orden: campos obligatorios, cantidad, bodegas, SKU, ubicaciones.
func (uc *UseCase) validateRecord(agg *inventory.Aggregate, rec entity.MovementRecord) error {
	if rec.SKU == "" {
		return domain.Invalid("sku", "el producto es obligatorio")
	}
	if rec.Warehouse == "" {
		return domain.Invalid("warehouse", "el almacén es obligatorio")
	}
	if rec.Quantity <= 0 {
		return domain.Invalid("quantity", "la cantidad debe ser mayor a 0")
	}
	if err := uc.checkWarehouse(rec.Warehouse); err != nil {
		return err
	}

	var locations [][2]string
	switch d := rec.Details.(type) {
	case entity.InboundDetails:
		locations = append(locations, [2]string{rec.Warehouse, d.Location})
	case entity.OutboundDetails:
		locations = append(locations, [2]string{rec.Warehouse, d.Location})
	case entity.LocalTransferDetails:
		if d.DestinationWarehouse == "" {
			return domain.Invalid("destination_warehouse", "seleccione almacén destino")
		}
		if err := uc.checkWarehouse(d.DestinationWarehouse); err != nil {
			return err
		}
		if d.DestinationWarehouse == rec.Warehouse {
			return domain.ErrSameWarehouse
		}
		locations = append(locations,
			[2]string{rec.Warehouse, d.OriginLocation},
			[2]string{d.DestinationWarehouse, d.DestinationLocation})
	case entity.ExternalTransferDetails:
		if strings.TrimSpace(d.ExternalDestination) == "" {
			return domain.Invalid("external_destination", "ingrese el destino externo o cliente")
		}
		locations = append(locations, [2]string{rec.Warehouse, d.OriginLocation})
	default:
		return domain.Invalid("kind", "tipo de movimiento desconocido")
	}

	if _, ok := agg.Catalog().FindBySKU(rec.SKU); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSKU, rec.SKU)
	}
	for _, l := range locations {
		if l[1] == "" {
			continue
		}
		if _, ok := agg.FindLocation(l[0], l[1]); !ok {
			return fmt.Errorf("%w: %s en %s", domain.ErrUnknownLocation, l[1], l[0])
		}
	}
	return nil
}

func (uc *UseCase) checkWarehouse(name string) error {
	if !uc.warehouses.Contains(name) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownWarehouse, name)
	}
	return nil
}

// stockError convierte el primer faltante en el error de dominio.
func stockError(shortfalls []inventory.Shortfall) error {
	if len(shortfalls) == 0 {
		return nil
	}
	s := shortfalls[0]
	return &domain.StockError{
		SKU:       s.Key.SKU,
		Warehouse: s.Key.Warehouse,
		Location:  s.Key.Location,
		Available: s.Available,
		Requested: s.Requested,
	}
}
