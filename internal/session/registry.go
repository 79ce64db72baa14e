package session

import (
	"sync"
	"time"
)

// Registry keeps the screen each user currently has mounted. A user has at
// most one mounted screen: mounting another one discards the previous state.
type Registry struct {
	mu      sync.Mutex
	idleTTL time.Duration
	now     func() time.Time
	entries map[int64]*entry
}

type entry struct {
	screen   string
	view     any
	lastSeen time.Time
}

func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{
		idleTTL: idleTTL,
		now:     time.Now,
		entries: make(map[int64]*entry),
	}
}

// Mount builds a fresh view for the screen and makes it the user's current one.
func Mount[V any](r *Registry, userID int64, screen string, build func() V) V {
	v := build()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	r.entries[userID] = &entry{screen: screen, view: v, lastSeen: now}
	return v
}

// Current returns the view mounted for screen. When the user is on another
// screen, or the entry went idle, a fresh view is mounted and fresh is true.
// If a concurrent call mounts the same screen while build runs, that view
// is kept and the one just built is dropped.
func Current[V any](r *Registry, userID int64, screen string, build func() V) (v V, fresh bool) {
	if existing, ok := lookup[V](r, userID, screen); ok {
		return existing, false
	}

	v = build()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	if existing, ok := r.match(userID, screen, now); ok {
		if existing, ok := existing.(V); ok {
			return existing, false
		}
	}
	r.entries[userID] = &entry{screen: screen, view: v, lastSeen: now}
	return v, true
}

func lookup[V any](r *Registry, userID int64, screen string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	if existing, ok := r.match(userID, screen, now); ok {
		if existing, ok := existing.(V); ok {
			return existing, true
		}
	}
	var zero V
	return zero, false
}

// match returns the user's view when it is for screen and touches it.
// Callers hold r.mu.
func (r *Registry) match(userID int64, screen string, now time.Time) (any, bool) {
	e, ok := r.entries[userID]
	if !ok || e.screen != screen {
		return nil, false
	}
	e.lastSeen = now
	return e.view, true
}

func (r *Registry) Discard(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, userID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweep drops idle entries. Callers hold r.mu.
func (r *Registry) sweep(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.entries, id)
		}
	}
}
