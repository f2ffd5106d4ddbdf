package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Registry keeps one loaded Workspace per signed-in user.
type Registry struct {
	boards BoardStore
	todos  TodoStore
	syncer Syncer

	loads singleflight.Group

	mu         sync.Mutex
	workspaces map[uuid.UUID]*Workspace
}

func NewRegistry(boards BoardStore, todos TodoStore, syncer Syncer) *Registry {
	return &Registry{
		boards:     boards,
		todos:      todos,
		syncer:     syncer,
		workspaces: make(map[uuid.UUID]*Workspace),
	}
}

func (r *Registry) cached(ownerID uuid.UUID) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.workspaces[ownerID]
	return ws, ok
}

// Get returns the user's workspace, loading it from the database on first use.
// Concurrent first requests for the same user share a single load; loads for
// different users run independently. A failed load is not cached.
func (r *Registry) Get(ctx context.Context, ownerID uuid.UUID) (*Workspace, error) {
	if ws, ok := r.cached(ownerID); ok {
		return ws, nil
	}

	v, err, _ := r.loads.Do(ownerID.String(), func() (any, error) {
		if ws, ok := r.cached(ownerID); ok {
			return ws, nil
		}
		ws := New(ownerID, r.boards, r.todos, r.syncer)
		if err := ws.Reload(ctx); err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.workspaces[ownerID] = ws
		r.mu.Unlock()
		return ws, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Workspace), nil
}

// Evict forgets the user's workspace; the next Get reloads it.
func (r *Registry) Evict(ownerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, ownerID)
}

// Len reports how many workspaces are held in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}
