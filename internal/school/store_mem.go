package school

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	schools map[string]School
}

// NewInMemoryStore backs the same Store contract with a map, for tests and
// offline demos.
func NewInMemoryStore() Store {
	return &memoryStore{schools: map[string]School{}}
}

func (m *memoryStore) PutSchool(_ context.Context, s School) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools[s.ID] = s
	return nil
}

func (m *memoryStore) GetSchool(_ context.Context, id string) (School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schools[id]
	if !ok {
		return School{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) ListSchools(_ context.Context, opts ListOpts) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = 50
	}
	q := strings.ToLower(opts.Q)
	var all []Summary
	for _, s := range m.schools {
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(strings.ToLower(s.URN), q) {
			continue
		}
		all = append(all, Summary{ID: s.ID, Name: s.Name, URN: s.URN, Ofsted: s.Ofsted})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if opts.Offset >= len(all) {
		return nil, nil
	}
	all = all[opts.Offset:]
	if len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (m *memoryStore) GetByIDs(ctx context.Context, ids []string) ([]School, error) {
	out := make([]School, 0, len(ids))
	for _, id := range ids {
		s, err := m.GetSchool(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryStore) ListGeocoded(_ context.Context) ([]School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []School
	for _, s := range m.schools {
		if s.HasCoordinates() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
