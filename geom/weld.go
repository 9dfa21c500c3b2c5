package geom

import "math"

// cellKey identifies one cube of the weld grid.
type cellKey struct {
	x, y, z int64
}

// Weld collapses vertices that fall into the same dist-sized grid cell onto
// a single canonical vertex and drops triangles that degenerate in the
// process. The reduction depends only on vertex positions, never on
// insertion order, and running it twice leaves the vertex set unchanged:
// after one pass every cell holds exactly one vertex. Two vertices closer
// than dist can survive when a cell boundary falls between them; the grid
// guarantees a maximum of one vertex per cell, not a minimum pairwise
// distance.
func (m *Mesh) Weld(dist float64) {
	if dist <= 0 || len(m.Positions) == 0 {
		return
	}

	canon := make(map[cellKey]uint32, len(m.Positions))
	remap := make([]uint32, len(m.Positions))

	out := m.Positions[:0:0]
	for i, p := range m.Positions {
		key := cellKey{
			x: int64(math.Floor(p.X / dist)),
			y: int64(math.Floor(p.Y / dist)),
			z: int64(math.Floor(p.Z / dist)),
		}
		if j, ok := canon[key]; ok {
			remap[i] = j
			continue
		}
		j := uint32(len(out))
		canon[key] = j
		remap[i] = j
		out = append(out, p)
	}
	m.Positions = out

	indices := m.Indices[:0]
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := remap[m.Indices[t]]
		b := remap[m.Indices[t+1]]
		c := remap[m.Indices[t+2]]
		if a == b || b == c || a == c {
			continue
		}
		indices = append(indices, a, b, c)
	}
	m.Indices = indices
}
