package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

var _ repository.AggregateStore = (*AggregateStore)(nil)

type aggregateMeta struct {
	Version int64     `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// AggregateStore implementa repository.AggregateStore repartiendo el agregado en una clave por colección.
type AggregateStore struct {
	blobs repository.BlobStore
	codec *Codec
}

// NewAggregateStore construye el store sobre un BlobStore.
func NewAggregateStore(blobs repository.BlobStore, codec *Codec) *AggregateStore {
	return &AggregateStore{blobs: blobs, codec: codec}
}

// Load lee todas las claves. Una clave ausente deja la colección vacía.
func (s *AggregateStore) Load(ctx context.Context) (*repository.InventoryState, error) {
	st := &repository.InventoryState{}
	var meta aggregateMeta
	targets := map[string]any{
		repository.KeyCatalog:    &st.Catalog,
		repository.KeyStock:      &st.Slots,
		repository.KeyMovements:  &st.Movements,
		repository.KeyBatches:    &st.Batches,
		repository.KeyLocations:  &st.Locations,
		repository.KeyPartners:   &st.Partners,
		repository.KeyCarriers:   &st.Carriers,
		repository.KeyCategories: &st.Categories,
		repository.KeyMeta:       &meta,
	}
	for _, key := range repository.StateKeys {
		data, ok, err := s.blobs.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", key, err)
		}
		if !ok || len(data) == 0 {
			continue
		}
		if err := s.codec.Decode(data, targets[key]); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", key, err)
		}
	}
	st.Version = meta.Version
	st.SavedAt = meta.SavedAt
	return st, nil
}

// Save escribe todas las claves en una sola operación atómica del BlobStore.
func (s *AggregateStore) Save(ctx context.Context, st *repository.InventoryState) error {
	values := map[string]any{
		repository.KeyCatalog:    nonNil(st.Catalog),
		repository.KeyStock:      nonNil(st.Slots),
		repository.KeyMovements:  nonNil(st.Movements),
		repository.KeyBatches:    nonNil(st.Batches),
		repository.KeyLocations:  nonNil(st.Locations),
		repository.KeyPartners:   nonNil(st.Partners),
		repository.KeyCarriers:   nonNil(st.Carriers),
		repository.KeyCategories: nonNil(st.Categories),
		repository.KeyMeta:       aggregateMeta{Version: st.Version, SavedAt: st.SavedAt},
	}
	blobs := make(map[string][]byte, len(values))
	for key, v := range values {
		data, err := s.codec.Encode(v)
		if err != nil {
			return fmt.Errorf("codificar %s: %w", key, err)
		}
		blobs[key] = data
	}
	if err := s.blobs.PutMany(ctx, blobs); err != nil {
		return fmt.Errorf("guardar agregado: %w", err)
	}
	return nil
}

// nonNil serializa colecciones vacías como [] en lugar de null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
