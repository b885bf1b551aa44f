package router

import "sync"

// MemoryRouter implements domain.Navigator with an in-process history stack.
// Paths are stored verbatim; the router does not validate or normalize them.
type MemoryRouter struct {
	mu      sync.Mutex
	history []string
}

// New creates a router positioned at start.
func New(start string) *MemoryRouter {
	return &MemoryRouter{history: []string{start}}
}

// CurrentPath returns the most recent path.
func (r *MemoryRouter) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[len(r.history)-1]
}

// Navigate pushes path onto the history.
func (r *MemoryRouter) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, path)
}

// Back pops the current path unless it is the first one and returns the
// resulting current path.
func (r *MemoryRouter) Back() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) > 1 {
		r.history = r.history[:len(r.history)-1]
	}
	return r.history[len(r.history)-1]
}

// History returns every visited path, oldest first.
func (r *MemoryRouter) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}
