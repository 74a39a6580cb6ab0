package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

// UseCase registro de ubicaciones físicas. La ocupación actual solo la escribe Recompute
// (o el recálculo automático de los movimientos).
type UseCase struct {
	runner     appinventory.StateRunner
	warehouses inventory.WarehouseDirectory
	newID      inventory.IDGenerator
	now        inventory.Clock
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner appinventory.StateRunner, warehouses []string, newID inventory.IDGenerator, now inventory.Clock, log *logger.Logger) *UseCase {
	return &UseCase{
		runner:     runner,
		warehouses: inventory.WarehouseDirectory(warehouses),
		newID:      newID,
		now:        now,
		log:        log.Component("location"),
	}
}

// Create registra una ubicación. El código es único dentro de su bodega.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*entity.Location, error) {
	loc := entity.Location{
		Warehouse:   strings.TrimSpace(in.Warehouse),
		Code:        strings.TrimSpace(in.Code),
		Type:        strings.TrimSpace(in.Type),
		Zone:        strings.TrimSpace(in.Zone),
		CapacityMax: in.CapacityMax,
		Status:      entity.LocationStatusAvailable,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if in.Status != "" {
		loc.Status = entity.LocationStatus(strings.ToUpper(in.Status))
	}
	if err := uc.validate(loc); err != nil {
		return nil, err
	}

	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if _, dup := agg.FindLocation(loc.Warehouse, loc.Code); dup {
			return fmt.Errorf("%w: la ubicación %s ya existe en %s", domain.ErrDuplicate, loc.Code, loc.Warehouse)
		}
		now := uc.now()
		loc.ID = uc.newID()
		loc.CreatedAt = now
		loc.UpdatedAt = now
		agg.Locations = append(agg.Locations, loc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("location_id", loc.ID).Str("warehouse", loc.Warehouse).Str("code", loc.Code).Msg("ubicación registrada")
	return &loc, nil
}

// Update edita una ubicación conservando su ocupación actual.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*entity.Location, error) {
	var out entity.Location
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := indexOf(agg.Locations, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		loc := agg.Locations[i]
		if in.Warehouse != nil {
			loc.Warehouse = strings.TrimSpace(*in.Warehouse)
		}
		if in.Code != nil {
			loc.Code = strings.TrimSpace(*in.Code)
		}
		if in.Type != nil {
			loc.Type = strings.TrimSpace(*in.Type)
		}
		if in.Zone != nil {
			loc.Zone = strings.TrimSpace(*in.Zone)
		}
		if in.CapacityMax != nil {
			loc.CapacityMax = *in.CapacityMax
		}
		if in.Status != nil {
			loc.Status = entity.LocationStatus(strings.ToUpper(strings.TrimSpace(*in.Status)))
		}
		if in.Notes != nil {
			loc.Notes = strings.TrimSpace(*in.Notes)
		}
		if err := uc.validate(loc); err != nil {
			return err
		}
		if other, dup := agg.FindLocation(loc.Warehouse, loc.Code); dup && other.ID != id {
			return fmt.Errorf("%w: la ubicación %s ya existe en %s", domain.ErrDuplicate, loc.Code, loc.Warehouse)
		}
		loc.UpdatedAt = uc.now()
		agg.Locations[i] = loc
		out = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("location_id", id).Msg("ubicación actualizada")
	return &out, nil
}

// Delete elimina una ubicación vacía.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := indexOf(agg.Locations, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		if agg.Locations[i].CapacityCurrent > 0 {
			return fmt.Errorf("%w: No se puede eliminar una ubicación con stock asignado", domain.ErrConflict)
		}
		agg.Locations = append(agg.Locations[:i:i], agg.Locations[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("location_id", id).Msg("ubicación eliminada")
	return nil
}

// List devuelve las ubicaciones filtradas por bodega, zona y estado.
func (uc *UseCase) List(ctx context.Context, f dto.LocationFilter) ([]entity.Location, error) {
	out := []entity.Location{}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, l := range agg.Locations {
			if f.Warehouse != "" && l.Warehouse != f.Warehouse {
				continue
			}
			if f.Zone != "" && !strings.EqualFold(l.Zone, f.Zone) {
				continue
			}
			if f.Status != "" && !strings.EqualFold(string(l.Status), f.Status) {
				continue
			}
			out = append(out, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByWarehouse ubicaciones de una bodega.
func (uc *UseCase) ListByWarehouse(ctx context.Context, warehouse string) ([]entity.Location, error) {
	return uc.List(ctx, dto.LocationFilter{Warehouse: warehouse})
}

// ListAvailable ubicaciones disponibles y con espacio; warehouse vacío las lista todas.
func (uc *UseCase) ListAvailable(ctx context.Context, warehouse string) ([]entity.Location, error) {
	all, err := uc.ListByWarehouse(ctx, warehouse)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, l := range all {
		if l.HasRoom() {
			out = append(out, l)
		}
	}
	return out, nil
}

// Recompute recalcula la ocupación de todas las ubicaciones desde el snapshot de stock.
func (uc *UseCase) Recompute(ctx context.Context) (*dto.CapacityRecomputeResponse, error) {
	var locs []entity.Location
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		agg.RecomputeCapacities()
		locs = agg.Locations
		return nil
	})
	if err != nil {
		return nil, err
	}
	if locs == nil {
		locs = []entity.Location{}
	}
	uc.log.Info().Int("locations", len(locs)).Msg("ocupación de ubicaciones recalculada")
	return &dto.CapacityRecomputeResponse{Message: "Capacidades recalculadas", Locations: locs}, nil
}

func (uc *UseCase) validate(l entity.Location) error {
	if l.Warehouse == "" {
		return domain.Invalid("warehouse", "la bodega es obligatoria")
	}
	if l.Code == "" {
		return domain.Invalid("code", "el código es obligatorio")
	}
	if l.CapacityMax <= 0 {
		return domain.Invalid("capacity_max", "la capacidad máxima debe ser mayor a 0")
	}
	if !uc.warehouses.Contains(l.Warehouse) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownWarehouse, l.Warehouse)
	}
	if !entity.ValidLocationStatus(l.Status) {
		return domain.Invalid("status", "estado desconocido")
	}
	return nil
}

func indexOf(locs []entity.Location, id string) int {
	for i := range locs {
		if locs[i].ID == id {
			return i
		}
	}
	return -1
}
