package field

import "sync/atomic"

// Pointer is a last-value-wins register for the cursor position in canvas
// coordinates. Set may be called from any goroutine; intermediate samples
// between two Loads are dropped.
type Pointer struct {
	v atomic.Pointer[Vec]
}

// Set records the latest cursor position.
func (p *Pointer) Set(x, y float64) {
	p.v.Store(&Vec{x, y})
}

// Load returns the latest position, or the origin if none was ever set.
func (p *Pointer) Load() Vec {
	if v := p.v.Load(); v != nil {
		return *v
	}
	return Vec{}
}
