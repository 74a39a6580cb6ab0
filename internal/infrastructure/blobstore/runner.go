package blobstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

var tracer = otel.Tracer("logistica-inventario/blobstore")

// Ensure Runner implements inventory.StateRunner.
var _ appinventory.StateRunner = (*Runner)(nil)

// Runner serializa las operaciones sobre el agregado: carga, ejecuta y guarda bajo un mutex.
type Runner struct {
	mu    sync.Mutex
	store repository.AggregateStore
	opts  inventory.Options
	now   inventory.Clock
	newID inventory.IDGenerator
}

// NewRunner construye el runner.
func NewRunner(store repository.AggregateStore, opts inventory.Options, now inventory.Clock, newID inventory.IDGenerator) *Runner {
	return &Runner{store: store, opts: opts, now: now, newID: newID}
}

// Read carga el agregado y ejecuta fn sin guardar.
func (r *Runner) Read(ctx context.Context, fn func(agg *inventory.Aggregate) error) error {
	ctx, span := tracer.Start(ctx, "aggregate.read")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	agg, err := r.load(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return fn(agg)
}

// Run carga el agregado, ejecuta fn y guarda con la versión incrementada. Si fn o el guardado
// fallan, la mutación en memoria se descarta.
func (r *Runner) Run(ctx context.Context, fn func(agg *inventory.Aggregate) error) error {
	ctx, span := tracer.Start(ctx, "aggregate.run")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	agg, err := r.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load")
		return err
	}
	if err := fn(agg); err != nil {
		return err
	}

	st := agg.State()
	st.Version = agg.Version + 1
	st.SavedAt = r.now()
	span.SetAttributes(attribute.Int64("aggregate.version", st.Version))
	if err := r.store.Save(ctx, st); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save")
		return err
	}
	return nil
}

func (r *Runner) load(ctx context.Context) (*inventory.Aggregate, error) {
	st, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar agregado: %w", err)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("aggregate.loaded_version", st.Version))
	return inventory.FromState(st, r.opts, r.now, r.newID), nil
}

// SystemClock reloj real.
func SystemClock() time.Time { return time.Now() }
