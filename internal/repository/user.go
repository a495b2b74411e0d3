package repository

import (
	"slices"
	"sync"

	"github.com/deppfellow/user-service/internal/model/user"
)

// UserRepository is the in-memory store of user records.
//
// Every method takes the lock for its whole duration, so no caller ever
// observes a partially applied mutation. Records are copied in and out;
// callers never hold a reference into the store.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
	order []string // insertion order of live ids
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]user.User),
	}
}

// Create inserts u under u.ID and returns the stored record.
// The id must already be assigned by the caller.
func (r *UserRepository) Create(u user.User) user.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		r.order = append(r.order, u.ID)
	}
	r.users[u.ID] = u

	return u
}

// GetByID returns the record for id and whether it exists.
func (r *UserRepository) GetByID(id string) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok
}

// List returns a snapshot of every record in insertion order. The slice is
// never nil.
func (r *UserRepository) List() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}

// Update applies patch to the record for id. It reports false, and changes
// nothing, when id is unknown.
func (r *UserRepository) Update(id string, patch user.Patch) (user.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return user.User{}, false
	}

	updated := patch.Apply(current)
	r.users[id] = updated

	return updated, true
}

// Delete removes the record for id and reports whether it existed.
func (r *UserRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}

	delete(r.users, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	return true
}

// Count returns the number of stored records.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
