package rootgen

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/config"
)

// baseDirection maps the growth direction selector to the base vector of a
// root of the given length. The four fixed cases are an exact dispatch on
// the enum; Mixed picks one of them per root from that root's stream.
// Spiral uses the radial vector here: its twist comes entirely from the
// phyllotaxis rotation applied afterwards.
func baseDirection(dir config.Direction, length float64, rng *rand.Rand) r3.Vec {
	switch dir {
	case config.DirectionDown:
		return r3.Vec{Z: -length}
	case config.DirectionUp:
		return r3.Vec{Z: length}
	case config.DirectionRadial, config.DirectionSpiral:
		return r3.Vec{X: length}
	case config.DirectionDiagonal:
		return r3.Vec{X: 0.7 * length, Z: -0.7 * length}
	case config.DirectionMixed:
		fixed := [4]config.Direction{
			config.DirectionDown,
			config.DirectionUp,
			config.DirectionRadial,
			config.DirectionDiagonal,
		}
		return baseDirection(fixed[rng.Intn(len(fixed))], length, rng)
	}
	return r3.Vec{Z: -length}
}
