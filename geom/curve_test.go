package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLineSampling(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"standard", 50, 50},
		{"minimum", 2, 2},
		{"clamped up", 1, 2},
		{"zero", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Line(r3.Vec{}, r3.Vec{Z: -10}, tt.count)
			if c.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.want)
			}
			if len(c.Radii) != tt.want {
				t.Errorf("len(Radii) = %d, want %d", len(c.Radii), tt.want)
			}
		})
	}
}

func TestLineEndpoints(t *testing.T) {
	origin := r3.Vec{X: 1, Y: 2, Z: 3}
	dir := r3.Vec{Z: -10}
	c := Line(origin, dir, 50)

	if d := r3.Norm(r3.Sub(c.Points[0], origin)); d > 1e-12 {
		t.Errorf("first point off origin by %v", d)
	}
	tip := r3.Add(origin, dir)
	if d := r3.Norm(r3.Sub(c.Points[c.Len()-1], tip)); d > 1e-12 {
		t.Errorf("last point off tip by %v", d)
	}

	// Even spacing
	step := r3.Norm(r3.Sub(c.Points[1], c.Points[0]))
	for i := 1; i < c.Len()-1; i++ {
		s := r3.Norm(r3.Sub(c.Points[i+1], c.Points[i]))
		if math.Abs(s-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %v vs %v", i, s, step)
		}
	}
}

func TestParamRange(t *testing.T) {
	c := Line(r3.Vec{}, r3.Vec{X: 1}, 5)
	if c.Param(0) != 0 {
		t.Errorf("Param(0) = %v, want 0", c.Param(0))
	}
	if c.Param(4) != 1 {
		t.Errorf("Param(4) = %v, want 1", c.Param(4))
	}
	if math.Abs(c.Param(2)-0.5) > 1e-12 {
		t.Errorf("Param(2) = %v, want 0.5", c.Param(2))
	}
}

func TestTangentStraightLine(t *testing.T) {
	c := Line(r3.Vec{}, r3.Vec{Z: -10}, 10)
	want := r3.Vec{Z: -1}
	for i := 0; i < c.Len(); i++ {
		got := c.Tangent(i)
		if r3.Norm(r3.Sub(got, want)) > 1e-9 {
			t.Fatalf("Tangent(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestTangentDegenerate(t *testing.T) {
	c := Curve{Points: []r3.Vec{{X: 1}, {X: 1}}, Radii: []float64{0, 0}}
	if got := c.Tangent(0); r3.Norm(got) != 0 {
		t.Errorf("degenerate segment tangent = %v, want zero", got)
	}
}

func TestFrameOrthonormal(t *testing.T) {
	dirs := []r3.Vec{
		{Z: -1},
		{Z: 1},
		{X: 1},
		{X: 0.577, Y: 0.577, Z: -0.577},
		{X: 0.1, Z: -0.995}, // near vertical, exercises the reference flip
	}
	for _, d := range dirs {
		tan := r3.Unit(d)
		u, v := Frame(tan)
		if math.Abs(r3.Norm(u)-1) > 1e-9 || math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Errorf("Frame(%v): non-unit basis", d)
		}
		if math.Abs(r3.Dot(u, tan)) > 1e-9 || math.Abs(r3.Dot(v, tan)) > 1e-9 || math.Abs(r3.Dot(u, v)) > 1e-9 {
			t.Errorf("Frame(%v): basis not orthogonal", d)
		}
	}
}

func TestNormalPerpendicular(t *testing.T) {
	c := Line(r3.Vec{}, r3.Vec{X: 3, Y: 1, Z: -5}, 8)
	for i := 0; i < c.Len(); i++ {
		n := c.Normal(i)
		if math.Abs(r3.Norm(n)-1) > 1e-9 {
			t.Fatalf("Normal(%d) not unit: %v", i, n)
		}
		if math.Abs(r3.Dot(n, c.Tangent(i))) > 1e-9 {
			t.Fatalf("Normal(%d) not perpendicular to tangent", i)
		}
	}
}
