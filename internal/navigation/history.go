package navigation

import (
	"sync"

	"github.com/rs/xid"
)

// Location is a single history entry.
type Location struct {
	Key   string // Unique id of the entry
	Path  string // Visible address
	State any    // State attached when the entry was created
}

// NavigateOptions controls how Navigate records the new location.
type NavigateOptions struct {
	Replace bool // Replace the current entry instead of pushing
	State   any  // State attached to the new entry
}

// Navigator is the subset of History used by consumers that only read the
// current location and navigate.
type Navigator interface {
	Location() Location
	Navigate(path string, opts NavigateOptions)
}

// History is an in-memory navigation history.
// It is safe for concurrent use.
type History struct {
	mu        sync.Mutex
	entries   []Location
	index     int
	listeners map[int]func(Location)
	nextID    int
}

// NewHistory creates a history with a single entry at initialPath and no state.
func NewHistory(initialPath string) *History {
	return &History{
		entries:   []Location{newLocation(initialPath, nil)},
		listeners: make(map[int]func(Location)),
	}
}

func newLocation(path string, state any) Location {
	return Location{
		Key:   xid.New().String(),
		Path:  path,
		State: state,
	}
}

// Location returns the current entry.
func (h *History) Location() Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Navigate records a new location. Pushing discards every entry after the
// current one.
func (h *History) Navigate(path string, opts NavigateOptions) {
	h.mu.Lock()
	loc := newLocation(path, opts.State)
	if opts.Replace {
		h.entries[h.index] = loc
	} else {
		h.entries = append(h.entries[:h.index+1], loc)
		h.index++
	}
	h.mu.Unlock()

	h.notify(loc)
}

// Back moves to the previous entry. Returns false if already at the first one.
func (h *History) Back() bool {
	return h.Go(-1)
}

// Forward moves to the next entry. Returns false if already at the last one.
func (h *History) Forward() bool {
	return h.Go(1)
}

// Go moves the cursor by delta entries. The move is rejected (and false
// returned) when it would leave the history bounds.
func (h *History) Go(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	loc := h.entries[target]
	h.mu.Unlock()

	h.notify(loc)
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Index returns the position of the current entry.
func (h *History) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// CanGoBack reports whether Back would succeed.
func (h *History) CanGoBack() bool {
	return h.Index() > 0
}

// CanGoForward reports whether Forward would succeed.
func (h *History) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

// Listen registers fn to be called after every location change.
// The returned function unregisters it.
func (h *History) Listen(fn func(Location)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// notify calls listeners outside the lock so they may read the history.
func (h *History) notify(loc Location) {
	h.mu.Lock()
	fns := make([]func(Location), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(loc)
	}
}
