package rootgen

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/geom"
)

const (
	leafTipParam = 0.95
	leafSegments = 8
	leafRings    = 4
	leafFlattenZ = 0.3
)

// placeLeaves appends a flattened sphere at the tip of each hair curve.
// Only points past leafTipParam qualify, so a leaf sits on the final
// stretch of its curve rather than mid-span.
func placeLeaves(dst *geom.Mesh, curves []geom.Curve, size float64) int {
	if size <= 0 {
		return 0
	}
	placed := 0
	for _, c := range curves {
		n := c.Len()
		if n < 2 {
			continue
		}
		i := n - 1
		if c.Param(i) <= leafTipParam {
			continue
		}
		leaf := geom.UVSphere(leafSegments, leafRings)
		leaf.Transform(func(p r3.Vec) r3.Vec {
			return r3.Vec{
				X: p.X * size,
				Y: p.Y * size,
				Z: p.Z * size * leafFlattenZ,
			}
		})
		dst.AppendAt(leaf, c.Points[i])
		placed++
	}
	return placed
}
