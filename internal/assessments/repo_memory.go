package assessments

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the in-memory storage variant. The counter is guarded by
// the repo mutex so concurrent submissions never share an ID.
type MemoryRepo struct {
	mu          sync.RWMutex
	assessments map[int]Assessment
	nextID      int
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		assessments: make(map[int]Assessment),
		nextID:      1,
	}
}

// Create assigns the next ID and stores the assessment.
func (r *MemoryRepo) Create(ctx context.Context, a Assessment) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now().UTC()
	r.assessments[a.ID] = a
	return a, nil
}

// Get returns the assessment with the given ID.
func (r *MemoryRepo) Get(ctx context.Context, id int) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return a, nil
}

// AttachAnalysis sets the analysis on an existing assessment.
func (r *MemoryRepo) AttachAnalysis(ctx context.Context, id int, analysis Analysis) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	a.Analysis = &analysis
	r.assessments[id] = a
	return a, nil
}
