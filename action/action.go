// Package action provides the lifecycle plumbing that pointer gestures
// hook into. A host fires a Phase on a Bus for every step of an
// interaction, and gestures, such as those in the resize package,
// register handlers for the phases that they care about.
package action

import (
	"fmt"
	"slices"
	"sync"
)

// Phase is a step in the lifecycle of an interaction.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "action-start"
	case PhaseMove:
		return "action-move"
	case PhaseEnd:
		return "action-end"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Bus dispatches lifecycle events of type E to registered handlers.
// Handlers run synchronously in the goroutine that calls Fire, in the
// order that they were registered. Registering and removing handlers
// is safe for concurrent use, but a single interaction's events
// should be fired from a single goroutine.
type Bus[E any] struct {
	mu     sync.RWMutex
	nextID uint64
	hooks  map[Phase][]hook[E]
}

type hook[E any] struct {
	id uint64
	fn func(E)
}

// On registers fn to be called whenever phase is fired. The returned
// Handle can be used to unregister it.
func (b *Bus[E]) On(phase Phase, fn func(E)) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hooks == nil {
		b.hooks = make(map[Phase][]hook[E])
	}
	b.nextID++
	id := b.nextID
	b.hooks[phase] = append(b.hooks[phase], hook[E]{id: id, fn: fn})

	return Handle{remove: func() { b.remove(phase, id) }}
}

func (b *Bus[E]) remove(phase Phase, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hooks[phase] = slices.DeleteFunc(slices.Clone(b.hooks[phase]), func(h hook[E]) bool {
		return h.id == id
	})
}

// Fire calls every handler registered for phase with event.
func (b *Bus[E]) Fire(phase Phase, event E) {
	b.mu.RLock()
	hooks := b.hooks[phase]
	b.mu.RUnlock()

	for _, h := range hooks {
		h.fn(event)
	}
}

// Len returns the number of handlers registered for phase.
func (b *Bus[E]) Len(phase Phase) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.hooks[phase])
}

// Handle is a registration on a Bus.
type Handle struct {
	remove func()
}

// Remove unregisters the handler. Calling it more than once, or on
// the zero Handle, is a no-op.
func (h *Handle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
	h.remove = nil
}

// Handles is a group of registrations that are removed together.
type Handles []Handle

// Remove removes every handle in hs.
func (hs Handles) Remove() {
	for i := range hs {
		hs[i].Remove()
	}
}
