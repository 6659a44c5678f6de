package celebrate

import (
	"math/rand/v2"
	"time"
)

// Particle is one piece of confetti. Position is in normalized screen
// space, velocity in normalized units per second.
type Particle struct {
	X, Y   float64
	vx, vy float64
	life   time.Duration
	Glyph  rune
	Tint   int
}

// Alive reports whether the particle should still be drawn.
func (p Particle) Alive() bool {
	return p.life > 0 && p.Y <= 1.05
}

const gravity = 0.6 // normalized units per second squared

var glyphs = []rune{'*', '•', '✦', '·', 'o'}

// Field is a confetti particle simulation. It is driven entirely by the
// host screen: Burst spawns particles, Tick advances them. No wall clock
// is read, which keeps the simulation deterministic under test.
type Field struct {
	particles []Particle
	rng       *rand.Rand
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Burst spawns count particles fanning out from origin, alive for d.
func (f *Field) Burst(origin Point, count int, d time.Duration) {
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, Particle{
			X:     origin.X,
			Y:     origin.Y,
			vx:    (f.rng.Float64() - 0.5) * 1.2,
			vy:    f.rng.Float64() * 0.4,
			life:  d,
			Glyph: glyphs[f.rng.IntN(len(glyphs))],
			Tint:  f.rng.IntN(5),
		})
	}
}

// Tick advances the simulation by dt and drops dead particles.
func (f *Field) Tick(dt time.Duration) {
	secs := dt.Seconds()
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.vx * secs
		p.Y += p.vy * secs
		p.vy += gravity * secs
		p.life -= dt
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	f.particles = alive
}

// Active reports whether anything is left to draw.
func (f *Field) Active() bool {
	return len(f.particles) > 0
}

// Particles returns the live particles for rendering.
func (f *Field) Particles() []Particle {
	return f.particles
}
