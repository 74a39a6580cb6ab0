package location_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/application/location"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/blobstore"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/memory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

var warehouses = []string{"Central", "Norte", "Sur", "Virtual"}

type fixture struct {
	uc        *location.UseCase
	movements *appinventory.UseCase
}

// newFixture arma ubicaciones y movimientos sobre el mismo agregado; autoRecompute
// controla si los movimientos recalculan la ocupación por su cuenta.
func newFixture(t *testing.T, autoRecompute bool) *fixture {
	t.Helper()
	codec, err := blobstore.NewCodec(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = codec.Close() })

	n := 0
	ids := func() string { n++; return fmt.Sprintf("id-%d", n) }
	now := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	runner := blobstore.NewRunner(blobstore.NewAggregateStore(memory.NewBlobStore(), codec),
		inventory.Options{LowStockThreshold: 20}, now, ids)
	require.NoError(t, runner.Run(context.Background(), func(agg *inventory.Aggregate) error {
		agg.AddCatalogItem(entity.CatalogItem{ID: "c1", SKU: "PROD-001", Name: "Pallets Plásticos HD", Status: entity.CatalogStatusActive})
		return nil
	}))
	return &fixture{
		uc:        location.NewUseCase(runner, warehouses, ids, now, logger.Nop()),
		movements: appinventory.NewUseCase(runner, appinventory.Options{Warehouses: warehouses, AutoRecompute: autoRecompute}, logger.Nop()),
	}
}

func (f *fixture) create(t *testing.T, wh, code string, capacity int) *entity.Location {
	t.Helper()
	loc, err := f.uc.Create(context.Background(), dto.CreateLocationRequest{Warehouse: wh, Code: code, Zone: "A", CapacityMax: capacity})
	require.NoError(t, err)
	return loc
}

// ─────────────────────────────────────────────────────────────
// Alta y edición
// ─────────────────────────────────────────────────────────────

func TestCreate_ValoresPorDefecto(t *testing.T) {
	f := newFixture(t, false)
	loc := f.create(t, "Central", "A-01", 50)
	assert.Equal(t, entity.LocationStatusAvailable, loc.Status)
	assert.Zero(t, loc.CapacityCurrent)
	assert.NotEmpty(t, loc.ID)
	assert.False(t, loc.CreatedAt.IsZero())
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	f.create(t, "Central", "A-01", 50)

	_, err := f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Central", CapacityMax: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Central", Code: "A-02"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Central", Code: "A-02", CapacityMax: 10, Status: "ROTA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Lima", Code: "A-02", CapacityMax: 10})
	assert.ErrorIs(t, err, domain.ErrUnknownWarehouse)
	_, err = f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Central", Code: "A-01", CapacityMax: 10})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// el mismo código en otra bodega es válido
	_, err = f.uc.Create(ctx, dto.CreateLocationRequest{Warehouse: "Norte", Code: "A-01", CapacityMax: 10})
	assert.NoError(t, err)
}

func TestUpdate_NoTocaOcupacion(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	loc := f.create(t, "Central", "A-01", 50)
	_, err := f.movements.RegisterInbound(ctx, dto.InboundRequest{SKU: "PROD-001", Warehouse: "Central", Location: "A-01", Quantity: 30})
	require.NoError(t, err)

	status := "blocked"
	capacity := 80
	upd, err := f.uc.Update(ctx, loc.ID, dto.UpdateLocationRequest{Status: &status, CapacityMax: &capacity})
	require.NoError(t, err)
	assert.Equal(t, entity.LocationStatusBlocked, upd.Status)
	assert.Equal(t, 80, upd.CapacityMax)
	assert.Equal(t, 30, upd.CapacityCurrent)

	_, err = f.uc.Update(ctx, "no-existe", dto.UpdateLocationRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CodigoDuplicado(t *testing.T) {
	f := newFixture(t, false)
	f.create(t, "Central", "A-01", 50)
	other := f.create(t, "Central", "A-02", 50)

	code := "A-01"
	_, err := f.uc.Update(context.Background(), other.ID, dto.UpdateLocationRequest{Code: &code})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// conservar su propio código no es duplicado
	code = "A-02"
	_, err = f.uc.Update(context.Background(), other.ID, dto.UpdateLocationRequest{Code: &code})
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────────────────────
// Ocupación
// ─────────────────────────────────────────────────────────────

func TestRecompute_ExplicitoYBaja(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	loc := f.create(t, "Central", "A-01", 50)
	_, err := f.movements.RegisterInbound(ctx, dto.InboundRequest{SKU: "PROD-001", Warehouse: "Central", Location: "A-01", Quantity: 50})
	require.NoError(t, err)

	// sin recálculo automático la ocupación no cambia hasta llamar a Recompute
	list, err := f.uc.ListByWarehouse(ctx, "Central")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].CapacityCurrent)

	res, err := f.uc.Recompute(ctx)
	require.NoError(t, err)
	require.Len(t, res.Locations, 1)
	assert.Equal(t, 50, res.Locations[0].CapacityCurrent)

	err = f.uc.Delete(ctx, loc.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	available, err := f.uc.ListAvailable(ctx, "Central")
	require.NoError(t, err)
	assert.Empty(t, available, "llena")
}

func TestDelete_UbicacionVacia(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	loc := f.create(t, "Norte", "B-01", 10)

	require.NoError(t, f.uc.Delete(ctx, loc.ID))
	assert.ErrorIs(t, f.uc.Delete(ctx, loc.ID), domain.ErrNotFound)
}

func TestList_Filtros(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.create(t, "Central", "A-01", 10)
	b := f.create(t, "Central", "A-02", 10)
	f.create(t, "Norte", "B-01", 10)

	maintenance := string(entity.LocationStatusMaintenance)
	_, err := f.uc.Update(ctx, b.ID, dto.UpdateLocationRequest{Status: &maintenance})
	require.NoError(t, err)

	all, err := f.uc.List(ctx, dto.LocationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	central, err := f.uc.List(ctx, dto.LocationFilter{Warehouse: "Central", Zone: "a"})
	require.NoError(t, err)
	assert.Len(t, central, 2)

	inMaintenance, err := f.uc.List(ctx, dto.LocationFilter{Status: "maintenance"})
	require.NoError(t, err)
	require.Len(t, inMaintenance, 1)
	assert.Equal(t, "A-02", inMaintenance[0].Code)

	available, err := f.uc.ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, available, 2)
}
