package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// MockCommanderRepository is an in-memory commander.Repository for tests
type MockCommanderRepository struct {
	mu        sync.Mutex
	snapshots map[string]commander.Snapshot
	SaveCalls int
}

// NewMockCommanderRepository creates an empty in-memory repository
func NewMockCommanderRepository() *MockCommanderRepository {
	return &MockCommanderRepository{snapshots: make(map[string]commander.Snapshot)}
}

// Save stores the commander's snapshot
func (r *MockCommanderRepository) Save(ctx context.Context, cmdr *commander.Commander) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[cmdr.Name()] = cmdr.Snapshot()
	r.SaveCalls++
	return nil
}

// FindByName rehydrates a commander by name
func (r *MockCommanderRepository) FindByName(ctx context.Context, name string) (*commander.Commander, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.snapshots[name]
	if !ok {
		return nil, shared.NewCommanderError(name, "not tracked")
	}
	return commander.RestoreCommander(snap)
}

// ListAll rehydrates every stored commander, sorted by name
func (r *MockCommanderRepository) ListAll(ctx context.Context) ([]*commander.Commander, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.snapshots))
	for name := range r.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)

	commanders := make([]*commander.Commander, 0, len(names))
	for _, name := range names {
		cmdr, err := commander.RestoreCommander(r.snapshots[name])
		if err != nil {
			return nil, err
		}
		commanders = append(commanders, cmdr)
	}
	return commanders, nil
}

// Delete removes a stored snapshot
func (r *MockCommanderRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, name)
	return nil
}
