package api

import (
	"sort"
	"sync"
	"time"

	"asistencia/internal/models"
)

// Dataset is one uploaded punch file plus its normalized state. Datasets live
// in memory for the life of the process; nothing is persisted.
type Dataset struct {
	ID          string               `json:"id"`
	Archivo     string               `json:"archivo"`
	Subido      time.Time            `json:"subido"`
	Headers     []string             `json:"headers"`
	Mapping     models.ColumnMapping `json:"mapping"`
	Rows        []models.RawRow      `json:"-"`
	Events      []models.Event       `json:"-"`
	Filas       int                  `json:"filas"`
	Eventos     int                  `json:"eventos"`
	Descartadas int                  `json:"descartadas"`
	Revision    int                  `json:"revision"`
}

// Store is the in-memory dataset registry.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

func NewStore() *Store {
	return &Store{datasets: make(map[string]*Dataset)}
}

func (s *Store) Put(d *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[d.ID] = d
}

// Get returns a snapshot of the dataset. The slices are shared but treated as
// immutable: updates replace them wholesale under the write lock.
func (s *Store) Get(id string) (Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.datasets[id]
	if !ok {
		return Dataset{}, false
	}
	return *d, true
}

// Update applies fn to the dataset under the write lock.
func (s *Store) Update(id string, fn func(*Dataset)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.datasets[id]
	if !ok {
		return false
	}
	fn(d)
	return true
}

// List returns snapshots of all datasets, newest first.
func (s *Store) List() []Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Dataset, 0, len(s.datasets))
	for _, d := range s.datasets {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subido.After(out[j].Subido) })
	return out
}
