package batch_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/application/batch"
	"github.com/batmanhot/logistica-inventario/internal/application/catalog"
	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/blobstore"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/memory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

// ─────────────────────────────────────────────────────────────
// Fixture: catálogo sembrado (PROD-002 perecible) sobre almacén en memoria
// ─────────────────────────────────────────────────────────────

type fixture struct {
	uc    *batch.UseCase
	blobs *memory.BlobStore
	today *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	codec, err := blobstore.NewCodec(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = codec.Close() })

	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	ids := func() string { n++; return fmt.Sprintf("id-%d", n) }
	now := func() time.Time { return today }
	blobs := memory.NewBlobStore()
	runner := blobstore.NewRunner(blobstore.NewAggregateStore(blobs, codec), inventory.Options{NearExpiryDays: 30}, now, ids)

	_, err = catalog.NewUseCase(runner, ids, now, logger.Nop()).SeedDefaults(context.Background())
	require.NoError(t, err)
	return &fixture{uc: batch.NewUseCase(runner, logger.Nop()), blobs: blobs, today: &today}
}

func TestCreate_CalculaEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-1", ExpiryDate: "2024-06-20", OriginalQuantity: 40})
	require.NoError(t, err)
	assert.Equal(t, entity.BatchStatusNearExpiry, b.Status)
	assert.Equal(t, 40, b.CurrentQuantity)

	b, err = f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-2", ExpiryDate: "2024-05-01", OriginalQuantity: 5})
	require.NoError(t, err)
	assert.Equal(t, entity.BatchStatusExpired, b.Status)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]dto.CreateBatchRequest{
		"sin sku":          {LotNumber: "L", ExpiryDate: "2025-01-01", OriginalQuantity: 1},
		"sin lote":         {SKU: "PROD-002", ExpiryDate: "2025-01-01", OriginalQuantity: 1},
		"sin vencimiento":  {SKU: "PROD-002", LotNumber: "L", OriginalQuantity: 1},
		"fecha inválida":   {SKU: "PROD-002", LotNumber: "L", ExpiryDate: "31/12/2025", OriginalQuantity: 1},
		"cantidad cero":    {SKU: "PROD-002", LotNumber: "L", ExpiryDate: "2025-01-01"},
		"no es perecible":  {SKU: "PROD-001", LotNumber: "L", ExpiryDate: "2025-01-01", OriginalQuantity: 1},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-999", LotNumber: "L", ExpiryDate: "2025-01-01", OriginalQuantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownSKU)
}

func TestUpdate_RecalculaSoloConNuevoVencimiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-1", ExpiryDate: "2025-06-01", OriginalQuantity: 10})
	require.NoError(t, err)
	require.Equal(t, entity.BatchStatusValid, b.Status)

	current := 4
	upd, err := f.uc.Update(ctx, b.ID, dto.UpdateBatchRequest{CurrentQuantity: &current})
	require.NoError(t, err)
	assert.Equal(t, 4, upd.CurrentQuantity)
	assert.Equal(t, entity.BatchStatusValid, upd.Status)

	expiry := "2024-06-10"
	upd, err = f.uc.Update(ctx, b.ID, dto.UpdateBatchRequest{ExpiryDate: &expiry})
	require.NoError(t, err)
	assert.Equal(t, entity.BatchStatusNearExpiry, upd.Status)

	_, err = f.uc.Update(ctx, "no-existe", dto.UpdateBatchRequest{CurrentQuantity: &current})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	negative := -1
	_, err = f.uc.Update(ctx, b.ID, dto.UpdateBatchRequest{CurrentQuantity: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-1", ExpiryDate: "2025-06-01", OriginalQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, b.ID))
	assert.ErrorIs(t, f.uc.Delete(ctx, b.ID), domain.ErrNotFound)
}

func TestList_FiltrosYContadores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-1", ExpiryDate: "2024-06-20", OriginalQuantity: 10})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-2", ExpiryDate: "2024-05-20", OriginalQuantity: 10})
	require.NoError(t, err)

	all, err := f.uc.List(ctx, dto.BatchFilter{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3) // incluye el lote sembrado
	assert.Equal(t, 1, all.Expired)
	assert.Equal(t, 1, all.NearExpiry)
	assert.Equal(t, "L-2", all.Items[0].LotNumber)

	expired, err := f.uc.List(ctx, dto.BatchFilter{Status: "expired"})
	require.NoError(t, err)
	require.Len(t, expired.Items, 1)
	assert.Equal(t, 1, expired.Expired)
}

func TestSweep_GuardaSoloConCambios(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, dto.CreateBatchRequest{SKU: "PROD-002", LotNumber: "L-1", ExpiryDate: "2024-06-20", OriginalQuantity: 10})
	require.NoError(t, err)

	puts := f.blobs.Puts()
	changed, err := f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Equal(t, puts, f.blobs.Puts())

	*f.today = time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC)
	changed, err = f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Greater(t, f.blobs.Puts(), puts)

	res, err := f.uc.List(ctx, dto.BatchFilter{Status: string(entity.BatchStatusExpired)})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "L-1", res.Items[0].LotNumber)
}

// ─────────────────────────────────────────────────────────────
// Scheduler
// ─────────────────────────────────────────────────────────────

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep(context.Context) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestScheduler_BarreAlIniciarYSeDetiene(t *testing.T) {
	sw := &countingSweeper{}
	s := batch.NewScheduler(sw, 10*time.Millisecond, logger.Nop())
	s.Start()
	s.Start() // idempotente
	assert.Eventually(t, func() bool { return sw.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()

	after := sw.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, sw.calls.Load())
}

func TestScheduler_IntervaloCeroDeshabilita(t *testing.T) {
	sw := &countingSweeper{}
	s := batch.NewScheduler(sw, 0, logger.Nop())
	s.Start()
	s.Stop()
	assert.Zero(t, sw.calls.Load())
}
