package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps assignments in process. Used when no database is configured.
type MemoryStore struct {
	mu          sync.RWMutex
	assignments []*Assignment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateAssignment(_ context.Context, a *Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	a.Audited = true
	cp := *a
	m.assignments = append(m.assignments, &cp)
	return nil
}

func (m *MemoryStore) GetAssignment(_ context.Context, id uuid.UUID) (*Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.assignments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// ListAssignments returns newest first, like the Postgres store.
func (m *MemoryStore) ListAssignments(_ context.Context, filter AssignmentFilter) ([]*Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Assignment
	skipped := 0
	for i := len(m.assignments) - 1; i >= 0; i-- {
		a := m.assignments[i]
		if filter.AssignedTo != "" && a.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.AssignedBy != "" && a.AssignedBy != filter.AssignedBy {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		cp := *a
		out = append(out, &cp)
		if len(out) >= filter.limit() {
			break
		}
	}
	return out, nil
}

func (m *MemoryStore) GetStats(_ context.Context) (*AssignmentStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &AssignmentStats{PerEmployee: make(map[string]int)}
	var sum int
	for _, a := range m.assignments {
		stats.TotalAssignments++
		stats.PerEmployee[a.AssignedTo]++
		sum += a.MatchScore
	}
	if stats.TotalAssignments > 0 {
		stats.AvgMatchScore = float64(sum) / float64(stats.TotalAssignments)
	}
	return stats, nil
}

func (m *MemoryStore) Close() error { return nil }

func (f AssignmentFilter) limit() int {
	if f.Limit <= 0 {
		return 100
	}
	return f.Limit
}
