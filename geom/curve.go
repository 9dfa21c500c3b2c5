package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is an ordered polyline with a per-point radius. A curve belongs to
// the generation level that built it and is treated as immutable once its
// radius profile has been written.
type Curve struct {
	Points []r3.Vec
	Radii  []float64
}

// Line builds a straight polyline from origin to origin+dir, evenly
// resampled to count points. The count is fixed regardless of the length of
// dir, so downstream noise and taper sampling density is
// length-independent.
func Line(origin, dir r3.Vec, count int) Curve {
	if count < 2 {
		count = 2
	}
	pts := make([]r3.Vec, count)
	for i := range pts {
		t := float64(i) / float64(count-1)
		pts[i] = r3.Add(origin, r3.Scale(t, dir))
	}
	return Curve{Points: pts, Radii: make([]float64, count)}
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.Points) }

// Param returns the normalized parameter of point i: 0 at the base, 1 at
// the tip.
func (c Curve) Param(i int) float64 {
	if len(c.Points) < 2 {
		return 0
	}
	return float64(i) / float64(len(c.Points)-1)
}

// Tangent returns the unit tangent at point i, using central differences
// in the interior and one-sided differences at the ends. A degenerate
// segment yields the zero vector.
func (c Curve) Tangent(i int) r3.Vec {
	n := len(c.Points)
	if n < 2 {
		return r3.Vec{}
	}
	var d r3.Vec
	switch {
	case i <= 0:
		d = r3.Sub(c.Points[1], c.Points[0])
	case i >= n-1:
		d = r3.Sub(c.Points[n-1], c.Points[n-2])
	default:
		d = r3.Sub(c.Points[i+1], c.Points[i-1])
	}
	if r3.Norm(d) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(d)
}

// Normal returns a unit vector perpendicular to the tangent at point i.
func (c Curve) Normal(i int) r3.Vec {
	t := c.Tangent(i)
	if r3.Norm(t) == 0 {
		return r3.Vec{}
	}
	u, _ := Frame(t)
	return u
}

// Frame returns two unit vectors u, v that complete the unit tangent t to
// an orthonormal basis. The reference axis flips near the vertical to keep
// the frame stable.
func Frame(t r3.Vec) (u, v r3.Vec) {
	ref := r3.Vec{Z: 1}
	if math.Abs(r3.Dot(t, ref)) > 0.99 {
		ref = r3.Vec{X: 1}
	}
	u = r3.Unit(r3.Cross(t, ref))
	v = r3.Cross(t, u)
	return u, v
}
