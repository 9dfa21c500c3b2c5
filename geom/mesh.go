// Package geom provides the curve and mesh primitives used by the root
// system generator.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangle mesh: vertex positions plus a flat index buffer with
// three indices per triangle.
type Mesh struct {
	Positions []r3.Vec
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Positions) == 0 }

// Append merges other into m, offsetting its indices past m's vertices.
func (m *Mesh) Append(other Mesh) {
	offset := uint32(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// AppendAt merges a copy of other translated by offset into m.
func (m *Mesh) AppendAt(other Mesh, offset r3.Vec) {
	base := uint32(len(m.Positions))
	for _, p := range other.Positions {
		m.Positions = append(m.Positions, r3.Add(p, offset))
	}
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+base)
	}
}

// Transform applies f to every vertex position in place.
func (m *Mesh) Transform(f func(r3.Vec) r3.Vec) {
	for i, p := range m.Positions {
		m.Positions[i] = f(p)
	}
}

// CheckFinite returns an error if any vertex coordinate is NaN or Inf.
func (m *Mesh) CheckFinite() error {
	for i, p := range m.Positions {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			return fmt.Errorf("vertex %d is not finite: (%v, %v, %v)", i, p.X, p.Y, p.Z)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
