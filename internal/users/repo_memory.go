package users

import (
	"context"
	"sync"
)

// MemoryRepo keeps users in process memory.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]User
	byName map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int]User),
		byName: make(map[string]int),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, username, password string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	u := User{ID: r.nextID, Username: username, Password: password}
	r.nextID++
	r.byID[u.ID] = u
	r.byName[u.Username] = u.ID
	return u, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}
