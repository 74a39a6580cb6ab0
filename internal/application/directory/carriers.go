package directory

import (
	"context"
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
	"github.com/batmanhot/logistica-inventario/pkg/textnorm"
)

// CarrierUseCase directorio de transportistas.
type CarrierUseCase struct {
	runner appinventory.StateRunner
	newID  inventory.IDGenerator
	now    inventory.Clock
	log    *logger.Logger
}

// NewCarrierUseCase construye el caso de uso.
func NewCarrierUseCase(runner appinventory.StateRunner, newID inventory.IDGenerator, now inventory.Clock, log *logger.Logger) *CarrierUseCase {
	return &CarrierUseCase{runner: runner, newID: newID, now: now, log: log.Component("carriers")}
}

// Create registra un transportista. Nombre, RUC y placa son obligatorios.
func (uc *CarrierUseCase) Create(ctx context.Context, in dto.CreateCarrierRequest) (*entity.Carrier, error) {
	c := entity.Carrier{
		Name:   strings.TrimSpace(in.Name),
		TaxID:  strings.TrimSpace(in.TaxID),
		Plate:  strings.ToUpper(strings.TrimSpace(in.Plate)),
		Driver: strings.TrimSpace(in.Driver),
		Phone:  strings.TrimSpace(in.Phone),
		Status: entity.CatalogStatusActive,
	}
	if err := validateCarrier(c); err != nil {
		return nil, err
	}
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		c.ID = uc.newID()
		c.CreatedAt = uc.now()
		agg.Carriers = append([]entity.Carrier{c}, agg.Carriers...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("carrier_id", c.ID).Str("plate", c.Plate).Msg("transportista registrado")
	return &c, nil
}

// Update edita un transportista.
func (uc *CarrierUseCase) Update(ctx context.Context, id string, in dto.UpdateCarrierRequest) (*entity.Carrier, error) {
	var out entity.Carrier
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := carrierIndex(agg.Carriers, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		c := agg.Carriers[i]
		trimmed(&c.Name, in.Name)
		trimmed(&c.TaxID, in.TaxID)
		trimmed(&c.Plate, in.Plate)
		c.Plate = strings.ToUpper(c.Plate)
		trimmed(&c.Driver, in.Driver)
		trimmed(&c.Phone, in.Phone)
		if err := parseStatus(&c.Status, in.Status); err != nil {
			return err
		}
		if err := validateCarrier(c); err != nil {
			return err
		}
		agg.Carriers[i] = c
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("carrier_id", id).Msg("transportista actualizado")
	return &out, nil
}

// Delete elimina un transportista.
func (uc *CarrierUseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := carrierIndex(agg.Carriers, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		agg.Carriers = append(agg.Carriers[:i:i], agg.Carriers[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("carrier_id", id).Msg("transportista eliminado")
	return nil
}

// List devuelve los transportistas filtrados por nombre, RUC, placa o chofer.
func (uc *CarrierUseCase) List(ctx context.Context, f dto.DirectoryFilter) ([]entity.Carrier, error) {
	out := []entity.Carrier{}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, c := range agg.Carriers {
			if matchesStatus(f.Status, c.Status) && textnorm.Contains(f.Query, c.Name, c.TaxID, c.Plate, c.Driver) {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func validateCarrier(c entity.Carrier) error {
	switch {
	case c.Name == "":
		return domain.Invalid("name", "el nombre es obligatorio")
	case c.TaxID == "":
		return domain.Invalid("tax_id", "el RUC es obligatorio")
	case c.Plate == "":
		return domain.Invalid("plate", "la placa es obligatoria")
	}
	return nil
}

func carrierIndex(carriers []entity.Carrier, id string) int {
	for i := range carriers {
		if carriers[i].ID == id {
			return i
		}
	}
	return -1
}
