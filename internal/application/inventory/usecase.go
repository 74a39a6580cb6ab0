package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
	"github.com/batmanhot/logistica-inventario/pkg/textnorm"
)

// Options comportamiento configurable del motor.
type Options struct {
	Warehouses    []string
	BatchFIFO     bool // descuenta lotes perecibles en salidas y traslados externos
	AutoRecompute bool // recalcula la ocupación de ubicaciones tras cada mutación
}

// UseCase registra, edita y elimina movimientos manteniendo el snapshot de stock.
// Toda validación ocurre antes de mutar; si falla, el runner descarta el agregado.
type UseCase struct {
	runner     StateRunner
	warehouses inventory.WarehouseDirectory
	opts       Options
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner StateRunner, opts Options, log *logger.Logger) *UseCase {
	return &UseCase{
		runner:     runner,
		warehouses: inventory.WarehouseDirectory(opts.Warehouses),
		opts:       opts,
		log:        log.Component("inventory"),
	}
}

// Warehouses devuelve el directorio de bodegas en su orden configurado.
func (uc *UseCase) Warehouses() []string {
	out := make([]string, len(uc.warehouses))
	copy(out, uc.warehouses)
	return out
}

// RegisterInbound registra una entrada de mercadería.
func (uc *UseCase) RegisterInbound(ctx context.Context, in dto.InboundRequest) (*dto.MovementMutationResponse, error) {
	meta, err := parseMeta(in.MovementMetaDTO)
	if err != nil {
		return nil, err
	}
	input := inventory.MovementInput{
		SKU:       strings.TrimSpace(in.SKU),
		Quantity:  in.Quantity,
		Warehouse: strings.TrimSpace(in.Warehouse),
		Meta:      meta,
		Details:   entity.InboundDetails{Location: strings.TrimSpace(in.Location), EntryType: strings.TrimSpace(in.EntryType)},
	}
	return uc.register(ctx, input, fmt.Sprintf("Entrada de %s registrada correctamente", input.SKU))
}

// RegisterOutbound registra una salida; falla con StockError si el slot no alcanza.
func (uc *UseCase) RegisterOutbound(ctx context.Context, in dto.OutboundRequest) (*dto.MovementMutationResponse, error) {
	meta, err := parseMeta(in.MovementMetaDTO)
	if err != nil {
		return nil, err
	}
	input := inventory.MovementInput{
		SKU:       strings.TrimSpace(in.SKU),
		Quantity:  in.Quantity,
		Warehouse: strings.TrimSpace(in.Warehouse),
		Meta:      meta,
		Details:   entity.OutboundDetails{Location: strings.TrimSpace(in.Location)},
	}
	msg := fmt.Sprintf("Salida de %d unidades exitosa", input.Quantity)
	if meta.Counterparty != "" {
		msg += " para " + meta.Counterparty
	}
	return uc.register(ctx, input, msg)
}

// RegisterTransfer registra un traslado local (entre bodegas propias) o externo.
func (uc *UseCase) RegisterTransfer(ctx context.Context, in dto.TransferRequest) (*dto.MovementMutationResponse, error) {
	meta, err := parseMeta(in.MovementMetaDTO)
	if err != nil {
		return nil, err
	}
	t := inventory.TransferInput{
		SKU:                  strings.TrimSpace(in.SKU),
		Quantity:             in.Quantity,
		OriginWarehouse:      strings.TrimSpace(in.OriginWarehouse),
		OriginLocation:       strings.TrimSpace(in.OriginLocation),
		DestinationWarehouse: strings.TrimSpace(in.DestinationWarehouse),
		DestinationLocation:  strings.TrimSpace(in.DestinationLocation),
		ExternalDestination:  strings.TrimSpace(in.ExternalDestination),
		IsLocal:              in.IsLocal,
		Meta:                 meta,
	}
	input := inventory.MovementInput{
		SKU:       t.SKU,
		Quantity:  t.Quantity,
		Warehouse: t.OriginWarehouse,
		Meta:      t.Meta,
		Details:   inventory.TransferDetails(t),
	}
	return uc.register(ctx, input, fmt.Sprintf("Transferencia registrada: %d unidades", t.Quantity))
}

func (uc *UseCase) register(ctx context.Context, input inventory.MovementInput, message string) (*dto.MovementMutationResponse, error) {
	var out *dto.MovementMutationResponse
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		candidate := entity.MovementRecord{SKU: input.SKU, Quantity: input.Quantity, Warehouse: input.Warehouse, Meta: input.Meta, Details: input.Details}
		if err := uc.validateRecord(agg, candidate); err != nil {
			return err
		}
		if err := stockError(inventory.Shortfalls(agg.Snapshot(), nil, inventory.Effects(candidate))); err != nil {
			return err
		}

		rec, applied := agg.Ledger.Register(input)
		warnings := uc.logApplied(rec, applied)
		uc.log.Info().
			Str("movement_id", rec.ID).
			Str("kind", string(rec.Kind())).
			Str("subtype", string(rec.Subtype())).
			Str("sku", rec.SKU).
			Str("warehouse", rec.Warehouse).
			Int("quantity", rec.Quantity).
			Msg("movimiento registrado")

		rec, batchWarnings := uc.consumeBatches(agg, rec)
		warnings = append(warnings, batchWarnings...)
		uc.afterMutation(agg)

		resp := ToMovementResponse(rec, agg.Catalog())
		out = &dto.MovementMutationResponse{Message: message, Movement: &resp, Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMovement edita un movimiento: revierte su efecto original y aplica el nuevo.
// La disponibilidad se valida sobre todos los slots que tocan la reversión y la aplicación;
// lo que el propio movimiento ya consumía vuelve al slot antes de comparar.
func (uc *UseCase) UpdateMovement(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementMutationResponse, error) {
	var meta *entity.MovementMeta
	if in.Meta != nil {
		m, err := parseMeta(*in.Meta)
		if err != nil {
			return nil, err
		}
		meta = &m
	}

	var out *dto.MovementMutationResponse
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		old, ok := agg.Ledger.Find(id)
		if !ok {
			return domain.ErrNotFound
		}
		details, err := patchDetails(old.Details, in)
		if err != nil {
			return err
		}
		patch := inventory.MovementPatch{
			SKU:       trimPtr(in.SKU),
			Quantity:  in.Quantity,
			Warehouse: trimPtr(in.Warehouse),
			Meta:      meta,
			Details:   details,
		}
		merged := inventory.Merge(old, patch)
		if err := uc.validateRecord(agg, merged); err != nil {
			return err
		}
		if err := stockError(inventory.Shortfalls(agg.Snapshot(), inventory.Effects(old), inventory.Effects(merged))); err != nil {
			return err
		}

		warnings := uc.restoreBatches(agg, old)
		rec, applied, _ := agg.Ledger.Update(id, patch)
		warnings = append(warnings, uc.logApplied(rec, applied)...)
		uc.log.Info().
			Str("movement_id", rec.ID).
			Str("kind_before", string(old.Kind())).
			Str("kind", string(rec.Kind())).
			Str("sku", rec.SKU).
			Int("quantity_before", old.Quantity).
			Int("quantity", rec.Quantity).
			Msg("movimiento actualizado")
		rec, batchWarnings := uc.consumeBatches(agg, rec)
		warnings = append(warnings, batchWarnings...)
		uc.afterMutation(agg)

		resp := ToMovementResponse(rec, agg.Catalog())
		out = &dto.MovementMutationResponse{Message: updatedMessage(rec), Movement: &resp, Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMovement elimina un movimiento revirtiendo su efecto. Se rechaza si la reversión
// dejaría algún slot negativo (por ejemplo, una entrada ya despachada).
func (uc *UseCase) DeleteMovement(ctx context.Context, id string) (*dto.MovementMutationResponse, error) {
	var out *dto.MovementMutationResponse
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		old, ok := agg.Ledger.Find(id)
		if !ok {
			return domain.ErrNotFound
		}
		if err := stockError(inventory.Shortfalls(agg.Snapshot(), inventory.Effects(old), nil)); err != nil {
			return err
		}

		rec, applied, _ := agg.Ledger.Delete(id)
		warnings := uc.logApplied(rec, applied)
		warnings = append(warnings, uc.restoreBatches(agg, rec)...)
		uc.log.Info().
			Str("movement_id", rec.ID).
			Str("kind", string(rec.Kind())).
			Str("sku", rec.SKU).
			Msg("movimiento eliminado")
		uc.afterMutation(agg)

		msg := "Movimiento eliminado y stock revertido."
		if rec.Kind() == entity.MovementKindTransfer {
			msg = "Transferencia eliminada y stock revertido."
		}
		out = &dto.MovementMutationResponse{Message: msg, Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMovement busca un movimiento; (nil, nil) si no existe.
func (uc *UseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		if rec, ok := agg.Ledger.Find(id); ok {
			resp := ToMovementResponse(rec, agg.Catalog())
			out = &resp
		}
		return nil
	})
	return out, err
}

// ListMovements devuelve el historial filtrado, el más reciente primero.
func (uc *UseCase) ListMovements(ctx context.Context, f dto.MovementFilter) (*dto.MovementListResponse, error) {
	f.DefaultPage()
	out := &dto.MovementListResponse{Items: []dto.MovementResponse{}}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		var matched []entity.MovementRecord
		for _, rec := range agg.Ledger.Records() {
			if f.Kind != "" && !strings.EqualFold(string(rec.Kind()), f.Kind) {
				continue
			}
			if f.SKU != "" && rec.SKU != f.SKU {
				continue
			}
			if f.Warehouse != "" && rec.Warehouse != f.Warehouse && rec.DestinationWarehouse() != f.Warehouse {
				continue
			}
			matched = append(matched, rec)
		}
		out.Page = dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matched)}
		if f.Offset >= len(matched) {
			return nil
		}
		end := min(f.Offset+f.Limit, len(matched))
		for _, rec := range matched[f.Offset:end] {
			out.Items = append(out.Items, ToMovementResponse(rec, agg.Catalog()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListStock devuelve los slots filtrados en orden de creación.
func (uc *UseCase) ListStock(ctx context.Context, f dto.StockFilter) (*dto.StockListResponse, error) {
	out := &dto.StockListResponse{Items: []entity.StockSlot{}}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, s := range agg.Snapshot().Slots() {
			if f.Warehouse != "" && s.Warehouse != f.Warehouse {
				continue
			}
			if f.SKU != "" && s.SKU != f.SKU {
				continue
			}
			if f.Status != "" && !strings.EqualFold(string(s.Status), f.Status) {
				continue
			}
			if !textnorm.Contains(f.Query, s.SKU, s.Name) {
				continue
			}
			out.Items = append(out.Items, s)
			out.TotalUnits += s.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summary indicadores del tablero.
func (uc *UseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	out := &dto.DashboardSummary{
		SlotsByStatus:    map[string]int{},
		UnitsByWarehouse: map[string]int{},
		MovementsByKind:  map[string]int{},
	}
	for _, w := range uc.warehouses {
		out.UnitsByWarehouse[w] = 0
	}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		out.Products = len(agg.CatalogItems())
		for _, s := range agg.Snapshot().Slots() {
			out.Slots++
			out.TotalUnits += s.Quantity
			out.SlotsByStatus[string(s.Status)]++
			out.UnitsByWarehouse[s.Warehouse] += s.Quantity
		}
		for _, rec := range agg.Ledger.Records() {
			out.MovementsByKind[string(rec.Kind())]++
		}
		for _, b := range agg.Batches.Batches() {
			switch b.Status {
			case entity.BatchStatusExpired:
				out.ExpiredBatches++
			case entity.BatchStatusNearExpiry:
				out.NearExpiryBatches++
			}
		}
		for _, l := range agg.Locations {
			if l.HasRoom() {
				out.AvailableLocations++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// logApplied registra en WARN los deltas descartados y los devuelve como advertencias.
func (uc *UseCase) logApplied(rec entity.MovementRecord, applied []inventory.AppliedEffect) []string {
	var warnings []string
	for _, a := range applied {
		if !a.Outcome.Dropped() {
			continue
		}
		uc.log.Warn().
			Str("movement_id", rec.ID).
			Str("sku", a.Key.SKU).
			Str("warehouse", a.Key.Warehouse).
			Str("location", a.Key.Location).
			Int("delta", a.Delta).
			Str("outcome", a.Outcome.String()).
			Msg("ajuste de stock descartado")
		warnings = append(warnings, fmt.Sprintf("ajuste de %d en %s/%s descartado: %s", a.Delta, a.Key.Warehouse, a.Key.SKU, a.Outcome))
	}
	return warnings
}

// consumeBatches descuenta lotes del SKU perecible cuando la mercadería sale del inventario
// y deja anotado en el registro qué lotes tocó, para devolverlo al editar o eliminar.
func (uc *UseCase) consumeBatches(agg *inventory.Aggregate, rec entity.MovementRecord) (entity.MovementRecord, []string) {
	uses, warnings := uc.consumeFIFO(agg, rec)
	rec.BatchUses = uses
	agg.Ledger.SetBatchUses(rec.ID, uses)
	return rec, warnings
}

func (uc *UseCase) consumeFIFO(agg *inventory.Aggregate, rec entity.MovementRecord) ([]entity.BatchConsumption, []string) {
	if !uc.opts.BatchFIFO {
		return nil, nil
	}
	switch rec.Details.(type) {
	case entity.OutboundDetails, entity.ExternalTransferDetails:
	default:
		return nil, nil
	}
	item, ok := agg.Catalog().FindBySKU(rec.SKU)
	if !ok || !item.Perishable {
		return nil, nil
	}
	used, missing := agg.Batches.ConsumeFIFO(rec.SKU, rec.Quantity)
	for _, u := range used {
		uc.log.Debug().Str("movement_id", rec.ID).Str("lot", u.LotNumber).Int("quantity", u.Quantity).Msg("lote consumido")
	}
	if missing > 0 {
		uc.log.Warn().Str("movement_id", rec.ID).Str("sku", rec.SKU).Int("missing", missing).Msg("lotes insuficientes para la salida")
		return used, []string{fmt.Sprintf("%d unidades sin lote vigente que descontar", missing)}
	}
	return used, nil
}

// restoreBatches devuelve a los lotes lo que el registro había descontado. Se ejecuta aunque
// el descuento FIFO esté apagado, para no dejar consumos huérfanos de una configuración anterior.
func (uc *UseCase) restoreBatches(agg *inventory.Aggregate, rec entity.MovementRecord) []string {
	if len(rec.BatchUses) == 0 {
		return nil
	}
	lost := agg.Batches.Restore(rec.BatchUses)
	uc.log.Debug().Str("movement_id", rec.ID).Int("lots", len(rec.BatchUses)).Msg("consumo de lotes revertido")
	if lost > 0 {
		uc.log.Warn().Str("movement_id", rec.ID).Int("lost", lost).Msg("lote eliminado; unidades no devueltas")
		return []string{fmt.Sprintf("%d unidades no se devolvieron porque su lote fue eliminado", lost)}
	}
	return nil
}

func (uc *UseCase) afterMutation(agg *inventory.Aggregate) {
	if uc.opts.AutoRecompute {
		agg.RecomputeCapacities()
	}
}

func updatedMessage(rec entity.MovementRecord) string {
	if rec.Kind() == entity.MovementKindTransfer {
		return "Transferencia actualizada correctamente"
	}
	return "Movimiento actualizado correctamente"
}

