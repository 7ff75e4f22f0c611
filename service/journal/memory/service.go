// Package memory provides an in-memory journal used as the default
// backend and for test inspection of the snapshot history.
package memory

import (
	"context"
	"sync"

	"github.com/viant/maitre/model"
	"github.com/viant/maitre/service/journal"
)

// Service keeps recorded snapshots in order of arrival.
type Service struct {
	mu      sync.RWMutex
	records []*model.Snapshot
}

// New creates an empty in-memory journal.
func New() *Service {
	return &Service{}
}

// Record appends a snapshot to the history.
func (s *Service) Record(_ context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, snapshot)
	return nil
}

// Snapshots returns the recorded history in arrival order.
func (s *Service) Snapshots() []*model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Snapshot, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of recorded snapshots.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Last returns the most recent snapshot or nil.
func (s *Service) Last() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return nil
	}
	return s.records[len(s.records)-1]
}

// ensure Service implements journal.Service
var _ journal.Service = (*Service)(nil)
