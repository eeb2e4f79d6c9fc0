package terminals

import (
	"sync"

	"github.com/spicetable/pos/internal/checkout"
)

// Terminal is one POS station: an orchestrator plus the lock that keeps
// its session single-writer. The engine itself is not safe for
// concurrent use; HTTP handlers serialize through Do.
type Terminal struct {
	ID   string
	mu   sync.Mutex
	orch *checkout.Orchestrator
}

// Do runs fn with exclusive access to the terminal's orchestrator.
func (t *Terminal) Do(fn func(o *checkout.Orchestrator) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.orch)
}

// Factory builds a fresh orchestrator for a newly seen terminal.
type Factory func() *checkout.Orchestrator

// Registry tracks terminals by ID, creating each one's session on first
// use. Every terminal has its own independent cart.
type Registry struct {
	mu      sync.Mutex
	factory Factory
	byID    map[string]*Terminal
}

// NewRegistry creates a terminal registry
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory: factory,
		byID:    make(map[string]*Terminal),
	}
}

// Get returns the terminal for the given ID, creating it if needed.
func (r *Registry) Get(id string) *Terminal {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		t = &Terminal{ID: id, orch: r.factory()}
		r.byID[id] = t
	}
	return t
}
