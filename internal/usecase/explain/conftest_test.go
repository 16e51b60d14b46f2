package explain

import (
	"context"
	"sync"

	"github.com/hireloop/matchd/internal/domain"
)

type mockGenerator struct {
	expl  domain.Explanation
	cost  int64
	err   error
	calls int
	last  domain.ExplainRequest
}

func (m *mockGenerator) Generate(_ context.Context, req domain.ExplainRequest) (domain.Explanation, int64, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return domain.Explanation{}, 0, m.err
	}
	return m.expl, m.cost, nil
}

type mockCostStore struct {
	mu     sync.Mutex
	data   map[string]int64
	getErr error
	incErr error
}

func newMockCostStore() *mockCostStore {
	return &mockCostStore{data: make(map[string]int64)}
}

func (m *mockCostStore) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.incErr != nil {
		return m.incErr
	}
	m.data[key] += val
	return nil
}

func (m *mockCostStore) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.data[key], nil
}
