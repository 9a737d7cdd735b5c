package memory

import (
	"sync"

	"github.com/wms-platform/sla-service/internal/domain"
)

// MatrixStore holds the current carrier deadline matrix. The matrix itself
// is an immutable value: readers get the current snapshot, writers swap in
// a whole new matrix. Nothing edits a published matrix in place.
type MatrixStore struct {
	mu     sync.RWMutex
	matrix domain.DeadlineMatrix
}

// NewMatrixStore creates a MatrixStore with the given initial matrix
func NewMatrixStore(matrix domain.DeadlineMatrix) *MatrixStore {
	return &MatrixStore{matrix: matrix}
}

// Get returns the current matrix snapshot
func (s *MatrixStore) Get() domain.DeadlineMatrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matrix
}

// Swap replaces the current matrix with a new value
func (s *MatrixStore) Swap(matrix domain.DeadlineMatrix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matrix = matrix
}
