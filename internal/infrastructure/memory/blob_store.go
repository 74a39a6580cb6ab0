// Package memory implementa el BlobStore en memoria (tests y driver memory).
package memory

import (
	"context"
	"sync"

	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore guarda copias de los blobs en un mapa.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	puts  int
}

// NewBlobStore crea un store vacío.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

func (s *BlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (s *BlobStore) PutMany(_ context.Context, blobs map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range blobs {
		s.blobs[k] = append([]byte(nil), v...)
	}
	s.puts++
	return nil
}

// Puts cantidad de escrituras realizadas.
func (s *BlobStore) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puts
}

func (s *BlobStore) Close() error { return nil }
