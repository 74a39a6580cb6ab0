package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

// errNoChanges corta el Run sin guardar cuando el barrido no cambió nada.
var errNoChanges = errors.New("sin cambios")

// UseCase libro de lotes perecibles. Las cantidades de lote no se concilian con los movimientos.
type UseCase struct {
	runner appinventory.StateRunner
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner appinventory.StateRunner, log *logger.Logger) *UseCase {
	return &UseCase{runner: runner, log: log.Component("batch")}
}

// Create registra un lote de un producto perecible.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateBatchRequest) (*entity.Batch, error) {
	sku := strings.TrimSpace(in.SKU)
	lot := strings.TrimSpace(in.LotNumber)
	if sku == "" {
		return nil, domain.Invalid("sku", "debe seleccionar un producto")
	}
	if lot == "" {
		return nil, domain.Invalid("lot_number", "el número de lote es obligatorio")
	}
	if in.ExpiryDate == "" {
		return nil, domain.Invalid("expiry_date", "la fecha de vencimiento es obligatoria")
	}
	expiry, err := parseDate("expiry_date", in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if in.OriginalQuantity <= 0 {
		return nil, domain.Invalid("original_quantity", "la cantidad debe ser mayor a 0")
	}

	var out entity.Batch
	err = uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if err := checkPerishable(agg, sku); err != nil {
			return err
		}
		out = agg.Batches.Add(inventory.BatchInput{SKU: sku, LotNumber: lot, ExpiryDate: expiry, OriginalQuantity: in.OriginalQuantity})
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("batch_id", out.ID).Str("sku", sku).Str("lot", lot).Str("status", string(out.Status)).Msg("lote registrado")
	return &out, nil
}

// Update edita un lote; el estado se recalcula solo si cambia el vencimiento.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBatchRequest) (*entity.Batch, error) {
	patch := inventory.BatchPatch{OriginalQuantity: in.OriginalQuantity, CurrentQuantity: in.CurrentQuantity}
	if in.SKU != nil {
		v := strings.TrimSpace(*in.SKU)
		if v == "" {
			return nil, domain.Invalid("sku", "debe seleccionar un producto")
		}
		patch.SKU = &v
	}
	if in.LotNumber != nil {
		v := strings.TrimSpace(*in.LotNumber)
		if v == "" {
			return nil, domain.Invalid("lot_number", "el número de lote es obligatorio")
		}
		patch.LotNumber = &v
	}
	if in.ExpiryDate != nil {
		d, err := parseDate("expiry_date", *in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		patch.ExpiryDate = &d
	}
	if in.OriginalQuantity != nil && *in.OriginalQuantity <= 0 {
		return nil, domain.Invalid("original_quantity", "la cantidad debe ser mayor a 0")
	}
	if in.CurrentQuantity != nil && *in.CurrentQuantity < 0 {
		return nil, domain.Invalid("current_quantity", "la cantidad no puede ser negativa")
	}

	var out *entity.Batch
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if _, ok := agg.Batches.Find(id); !ok {
			return domain.ErrNotFound
		}
		if patch.SKU != nil {
			if err := checkPerishable(agg, *patch.SKU); err != nil {
				return err
			}
		}
		b, _ := agg.Batches.Update(id, patch)
		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("batch_id", id).Msg("lote actualizado")
	return out, nil
}

// Delete elimina un lote.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if !agg.Batches.Delete(id) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("batch_id", id).Msg("lote eliminado")
	return nil
}

// List devuelve los lotes filtrados (más reciente primero) y los contadores de alerta
// calculados sobre todos los lotes.
func (uc *UseCase) List(ctx context.Context, f dto.BatchFilter) (*dto.BatchListResponse, error) {
	out := &dto.BatchListResponse{Items: []entity.Batch{}}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, b := range agg.Batches.Batches() {
			switch b.Status {
			case entity.BatchStatusExpired:
				out.Expired++
			case entity.BatchStatusNearExpiry:
				out.NearExpiry++
			}
			if f.SKU != "" && b.SKU != f.SKU {
				continue
			}
			if f.Status != "" && !strings.EqualFold(string(b.Status), f.Status) {
				continue
			}
			out.Items = append(out.Items, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sweep recalcula el estado de todos los lotes con la fecha actual. Solo guarda si hubo cambios.
func (uc *UseCase) Sweep(ctx context.Context) (int, error) {
	changed := 0
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		changed = agg.Batches.Sweep()
		if changed == 0 {
			return errNoChanges
		}
		return nil
	})
	if err != nil && !errors.Is(err, errNoChanges) {
		return 0, err
	}
	if changed > 0 {
		uc.log.Info().Int("changed", changed).Msg("estados de lotes recalculados")
	}
	return changed, nil
}

func checkPerishable(agg *inventory.Aggregate, sku string) error {
	item, ok := agg.Catalog().FindBySKU(sku)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSKU, sku)
	}
	if !item.Perishable {
		return domain.Invalid("sku", "el producto no es perecible")
	}
	return nil
}

func parseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.Invalid(field, "formato esperado YYYY-MM-DD")
	}
	return d, nil
}
