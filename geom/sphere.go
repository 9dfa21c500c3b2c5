package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// UVSphere builds a unit-radius UV sphere with the given segment and ring
// counts, poles on the Z axis.
func UVSphere(segments, rings int) Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var m Mesh
	m.Positions = append(m.Positions, r3.Vec{Z: 1})
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		z := math.Cos(phi)
		rad := math.Sin(phi)
		for s := 0; s < segments; s++ {
			th := 2 * math.Pi * float64(s) / float64(segments)
			m.Positions = append(m.Positions, r3.Vec{
				X: rad * math.Cos(th),
				Y: rad * math.Sin(th),
				Z: z,
			})
		}
	}
	m.Positions = append(m.Positions, r3.Vec{Z: -1})
	bottom := uint32(len(m.Positions) - 1)

	ringStart := func(r int) uint32 { return uint32(1 + (r-1)*segments) }

	// Top fan
	for s := 0; s < segments; s++ {
		s2 := uint32((s + 1) % segments)
		m.Indices = append(m.Indices, 0, ringStart(1)+uint32(s), ringStart(1)+s2)
	}
	// Quad strips between interior rings
	for r := 1; r < rings-1; r++ {
		a := ringStart(r)
		b := ringStart(r + 1)
		for s := 0; s < segments; s++ {
			s2 := uint32((s + 1) % segments)
			m.Indices = append(m.Indices,
				a+uint32(s), b+uint32(s), a+s2,
				a+s2, b+uint32(s), b+s2,
			)
		}
	}
	// Bottom fan
	last := ringStart(rings - 1)
	for s := 0; s < segments; s++ {
		s2 := uint32((s + 1) % segments)
		m.Indices = append(m.Indices, bottom, last+s2, last+uint32(s))
	}
	return m
}
