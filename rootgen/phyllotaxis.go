package rootgen

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/config"
)

// phylloAngle returns the golden-angle rotation for root index i.
func phylloAngle(i int, goldenRad float64) float64 {
	return float64(i) * goldenRad
}

// phylloOffset returns the planar origin offset for root index i.
// Separation arrives pre-clamped with the connection floor applied, so the
// offset radius never vanishes.
func phylloOffset(i int, goldenRad, separation float64) r3.Vec {
	a := phylloAngle(i, goldenRad)
	return r3.Vec{
		X: math.Cos(a) * separation,
		Y: math.Sin(a) * separation,
	}
}

// spreadFactor scales the spread-angle tilt per growth direction. Radial
// and diagonal roots tilt by the full spread; for everything else the
// effect is reduced to keep the silhouette compact. The asymmetry is
// intentional.
func spreadFactor(dir config.Direction) float64 {
	switch dir {
	case config.DirectionRadial, config.DirectionDiagonal:
		return 1.0
	default:
		return 0.3
	}
}

// orientDirection tilts the base direction around the horizontal axis by
// the scaled spread angle, then rotates it around the vertical axis by the
// root's golden angle.
func orientDirection(base r3.Vec, dir config.Direction, index int, goldenRad, spreadRad float64) r3.Vec {
	v := base
	if tilt := spreadRad * spreadFactor(dir); tilt != 0 {
		v = r3.NewRotation(tilt, r3.Vec{X: 1}).Rotate(v)
	}
	if a := phylloAngle(index, goldenRad); a != 0 {
		v = r3.NewRotation(a, r3.Vec{Z: 1}).Rotate(v)
	}
	return v
}
