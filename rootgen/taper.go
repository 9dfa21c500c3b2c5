package rootgen

import (
	"math"

	"github.com/pthm-cable/rootgen/geom"
)

// Taper exponents per level. Main roots taper gently; secondary roots
// sharpen toward the tip. Tertiary and finer hair roots keep their
// configured width along the whole curve.
const (
	taperExpMain      = 1.5
	taperExpSecondary = 2.0
)

// applyTaper writes the radius profile width*(1-t)^exp along the curve.
// The profile is non-increasing from base to tip and never negative.
func applyTaper(c *geom.Curve, width, exp float64) {
	for i := range c.Radii {
		r := width * math.Pow(1-c.Param(i), exp)
		if r < 0 {
			r = 0
		}
		c.Radii[i] = r
	}
}

// applyConstantRadius writes a uniform radius profile.
func applyConstantRadius(c *geom.Curve, width float64) {
	for i := range c.Radii {
		c.Radii[i] = width
	}
}
