package celebrate

import "time"

// Point is a burst origin in normalized screen space: X and Y in [0, 1],
// with (0.5, 0) being top-center — where the confetti cannon fires from.
type Point struct {
	X float64
	Y float64
}

// TopCenter is the usual cannon position.
var TopCenter = Point{X: 0.5, Y: 0}

// Celebrator is the fire-and-forget celebration capability. Implementations
// hold no session state; a burst simply plays out and fades.
type Celebrator interface {
	Burst(origin Point, count int, d time.Duration)
}

// Defaults for a correct-answer celebration.
const (
	DefaultCount    = 100
	DefaultDuration = 2 * time.Second
)
