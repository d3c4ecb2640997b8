// Package field simulates the ambient particle field: a fixed population of
// slowly drifting dots that wrap at the canvas edges and lean toward the
// pointer.
//
// A Field is not safe for concurrent use. It is driven by a single frame loop
// that calls Update once per display refresh; the only state written from
// elsewhere is the Pointer register.
package field

import (
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/logger"
)

// Field owns the particle set for one canvas.
type Field struct {
	settings  Settings
	rng       *rand.Rand
	particles []Particle

	width, height float64
	ratio         float64
	nextID        uint64
	generation    int
}

// New returns an empty field. Call Init before the first Update. A nil rng
// gets a randomly seeded source.
func New(s Settings, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{settings: s, rng: rng, ratio: 1}
}

// Init discards every particle and populates a fresh set of exactly
// Settings.Count for a width x height canvas. It is called on mount and on
// every resize; old positions are not carried over.
func (f *Field) Init(width, height, pixelRatio float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	f.width, f.height, f.ratio = width, height, pixelRatio
	f.generation++

	f.particles = make([]Particle, f.settings.Count)
	for i := range f.particles {
		f.nextID++
		f.particles[i] = spawn(f.rng, &f.settings, f.nextID, width, height)
	}

	logger.Logger().Debug("field init",
		"count", len(f.particles),
		"width", width,
		"height", height,
		"ratio", pixelRatio,
		"generation", f.generation)
}

// Update advances every particle by one frame against the given pointer.
func (f *Field) Update(pointer Vec) {
	center := Vec{f.width / 2, f.height / 2}
	for i := range f.particles {
		f.particles[i].step(&f.settings, f.width, f.height, pointer, center)
	}
}

// Particles returns the live particle slice. It is replaced by Init, so
// callers must not hold it across a resize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.particles)
}

// Size returns the logical canvas size of the last Init.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// PixelRatio returns the device pixel density of the last Init.
func (f *Field) PixelRatio() float64 {
	return f.ratio
}

// Settings returns a pointer to the field's settings.
func (f *Field) Settings() *Settings {
	return &f.settings
}

// Generation counts Init calls.
func (f *Field) Generation() int {
	return f.generation
}
