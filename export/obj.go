// Package export writes generated meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pthm-cable/rootgen/geom"
)

// WriteOBJ writes the mesh as Wavefront OBJ: one v line per vertex, one f
// line per triangle with 1-based indices.
func WriteOBJ(w io.Writer, m *geom.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Positions {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOBJFile writes the mesh to the given path.
func WriteOBJFile(path string, m *geom.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
