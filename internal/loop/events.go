package loop

import "sync"

// Events fans pointer-move and resize notifications out to listeners.
type Events struct {
	mu      sync.Mutex
	next    uint64
	pointer map[uint64]func(x, y float64)
	resize  map[uint64]func()
}

// NewEvents returns an event source with no listeners.
func NewEvents() *Events {
	return &Events{
		pointer: make(map[uint64]func(x, y float64)),
		resize:  make(map[uint64]func()),
	}
}

// OnPointerMove registers fn for pointer moves in host client coordinates.
// The returned function removes it and may be called more than once.
func (e *Events) OnPointerMove(fn func(x, y float64)) (remove func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	id := e.next
	e.pointer[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.pointer, id)
		e.mu.Unlock()
	}
}

// OnResize registers fn for surface resizes.
func (e *Events) OnResize(fn func()) (remove func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	id := e.next
	e.resize[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.resize, id)
		e.mu.Unlock()
	}
}

// PointerMove notifies pointer listeners.
func (e *Events) PointerMove(x, y float64) {
	for _, fn := range e.snapshotPointer() {
		fn(x, y)
	}
}

// Resize notifies resize listeners.
func (e *Events) Resize() {
	for _, fn := range e.snapshotResize() {
		fn()
	}
}

// Listeners returns the number of attached listeners of either kind.
func (e *Events) Listeners() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pointer) + len(e.resize)
}

func (e *Events) snapshotPointer() []func(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]func(x, y float64), 0, len(e.pointer))
	for _, fn := range e.pointer {
		out = append(out, fn)
	}
	return out
}

func (e *Events) snapshotResize() []func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]func(), 0, len(e.resize))
	for _, fn := range e.resize {
		out = append(out, fn)
	}
	return out
}
