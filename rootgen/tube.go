package rootgen

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/geom"
)

// tubeMesh sweeps a circular profile of the given resolution along the
// curve, one ring per sample, and stitches consecutive rings with quads
// split into triangles. The sweep is side walls only: tapered tips close
// up as the radius reaches zero and the weld pass fuses the tip ring,
// while the base ring stays open against its parent. Curves with fewer
// than two points produce an empty mesh. Rings where the tangent
// degenerates reuse the previous ring's frame so the tube never folds
// through itself.
func tubeMesh(c geom.Curve, resolution int) geom.Mesh {
	var m geom.Mesh
	n := c.Len()
	if n < 2 || resolution < 3 {
		return m
	}

	m.Positions = make([]r3.Vec, 0, n*resolution)
	var prevU, prevV r3.Vec
	haveFrame := false
	for i := 0; i < n; i++ {
		t := c.Tangent(i)
		var u, v r3.Vec
		if r3.Norm(t) == 0 {
			if !haveFrame {
				u, v = r3.Vec{X: 1}, r3.Vec{Y: 1}
			} else {
				u, v = prevU, prevV
			}
		} else {
			u, v = geom.Frame(t)
		}
		prevU, prevV = u, v
		haveFrame = true

		r := c.Radii[i]
		for s := 0; s < resolution; s++ {
			a := 2 * math.Pi * float64(s) / float64(resolution)
			offset := r3.Add(r3.Scale(r*math.Cos(a), u), r3.Scale(r*math.Sin(a), v))
			m.Positions = append(m.Positions, r3.Add(c.Points[i], offset))
		}
	}

	m.Indices = make([]uint32, 0, (n-1)*resolution*6)
	for i := 0; i < n-1; i++ {
		ring := uint32(i * resolution)
		next := uint32((i + 1) * resolution)
		for s := 0; s < resolution; s++ {
			s1 := uint32((s + 1) % resolution)
			a, b := ring+uint32(s), ring+s1
			d, e := next+uint32(s), next+s1
			m.Indices = append(m.Indices, a, d, b, b, d, e)
		}
	}
	return m
}
