package filing

import (
	"context"
	"sort"
	"sync"

	"github.com/turtacn/FilingDesk/pkg/errors"
)

// MemoryRepository is an in-memory Repository used by unit tests and by the
// CLI's file-less dev mode.  Records are deep-copied on the way in and out so
// callers can never alias the stored state.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*ApplicationRecord
}

// NewMemoryRepository returns an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*ApplicationRecord)}
}

func (m *MemoryRepository) Save(_ context.Context, r *ApplicationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.DocketNumber]; ok {
		return errors.New(errors.ErrCodeFilingAlreadyExists, "docket "+r.DocketNumber+" already exists")
	}
	m.records[r.DocketNumber] = copyRecord(r)
	return nil
}

func (m *MemoryRepository) Update(_ context.Context, r *ApplicationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.DocketNumber]; !ok {
		return errors.New(errors.ErrCodeFilingNotFound, "docket "+r.DocketNumber+" not found")
	}
	m.records[r.DocketNumber] = copyRecord(r)
	return nil
}

func (m *MemoryRepository) FindByDocket(_ context.Context, docketNumber string) (*ApplicationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[docketNumber]
	if !ok {
		return nil, errors.New(errors.ErrCodeFilingNotFound, "docket "+docketNumber+" not found")
	}
	out := copyRecord(r)
	out.Sanitize()
	return out, nil
}

func (m *MemoryRepository) List(_ context.Context, offset, limit int) ([]*ApplicationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dockets := make([]string, 0, len(m.records))
	for d := range m.records {
		dockets = append(dockets, d)
	}
	sort.Strings(dockets)

	if offset >= len(dockets) {
		return nil, nil
	}
	end := offset + limit
	if end > len(dockets) {
		end = len(dockets)
	}

	out := make([]*ApplicationRecord, 0, end-offset)
	for _, d := range dockets[offset:end] {
		r := copyRecord(m.records[d])
		r.Sanitize()
		out = append(out, r)
	}
	return out, nil
}

func (m *MemoryRepository) Delete(_ context.Context, docketNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[docketNumber]; !ok {
		return errors.New(errors.ErrCodeFilingNotFound, "docket "+docketNumber+" not found")
	}
	delete(m.records, docketNumber)
	return nil
}

// copyRecord deep-copies a record including its slices and extension map.
func copyRecord(r *ApplicationRecord) *ApplicationRecord {
	out := *r
	out.Applicants = append([]Party(nil), r.Applicants...)
	out.Inventors = append([]Party(nil), r.Inventors...)
	out.Priorities = append([]PriorityClaim(nil), r.Priorities...)
	out.Extensions = make(map[string]string, len(r.Extensions))
	for k, v := range r.Extensions {
		out.Extensions[k] = v
	}
	return &out
}
