package progress

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the in-memory storage variant with a mutex-guarded counter.
type MemoryRepo struct {
	mu        sync.RWMutex
	snapshots map[int]Progress
	nextID    int
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		snapshots: make(map[int]Progress),
		nextID:    1,
	}
}

// Create assigns the next ID and stores the snapshot.
func (r *MemoryRepo) Create(ctx context.Context, p Progress) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now().UTC()
	r.snapshots[p.ID] = p
	return p, nil
}

// Get returns the snapshot with the given ID.
func (r *MemoryRepo) Get(ctx context.Context, id int) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.snapshots[id]
	if !ok {
		return Progress{}, ErrNotFound
	}
	return p, nil
}
