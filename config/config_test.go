package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := Default()

	if p.Roots.Count != 5 {
		t.Errorf("Roots.Count = %d, want 5", p.Roots.Count)
	}
	if p.Roots.Direction != DirectionDown {
		t.Errorf("Roots.Direction = %v, want down", p.Roots.Direction)
	}
	if math.Abs(p.Fibonacci.GoldenAngle-137.5) > 1e-9 {
		t.Errorf("Fibonacci.GoldenAngle = %v, want 137.5", p.Fibonacci.GoldenAngle)
	}
	if !p.Secondary.Enable || !p.Tertiary.Enable {
		t.Error("secondary and tertiary should default to enabled")
	}
	if p.Quaternary.Enable {
		t.Error("quaternary should default to disabled")
	}
	if len(p.Growth.Multipliers) != 5 {
		t.Errorf("len(Growth.Multipliers) = %d, want 5", len(p.Growth.Multipliers))
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Params)
		check func(*testing.T, *Params)
	}{
		{
			"count above range",
			func(p *Params) { p.Roots.Count = 100 },
			func(t *testing.T, p *Params) {
				if p.Roots.Count != 13 {
					t.Errorf("Count = %d, want 13", p.Roots.Count)
				}
			},
		},
		{
			"count below range",
			func(p *Params) { p.Roots.Count = 0 },
			func(t *testing.T, p *Params) {
				if p.Roots.Count != 1 {
					t.Errorf("Count = %d, want 1", p.Roots.Count)
				}
			},
		},
		{
			"negative length",
			func(p *Params) { p.Roots.Length = -5 },
			func(t *testing.T, p *Params) {
				if p.Roots.Length != 0.1 {
					t.Errorf("Length = %v, want 0.1", p.Roots.Length)
				}
			},
		},
		{
			"depth above range",
			func(p *Params) { p.Branching.Depth = 99 },
			func(t *testing.T, p *Params) {
				if p.Branching.Depth != 6 {
					t.Errorf("Depth = %d, want 6", p.Branching.Depth)
				}
			},
		},
		{
			"invalid direction",
			func(p *Params) { p.Roots.Direction = Direction(42) },
			func(t *testing.T, p *Params) {
				if p.Roots.Direction != DirectionDown {
					t.Errorf("Direction = %v, want down", p.Roots.Direction)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mut(&p)
			if err := p.Normalize(); err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			tt.check(t, &p)
		})
	}
}

func TestNormalizeRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := Default()
		p.Noise.Roughness = bad
		if err := p.Normalize(); err == nil {
			t.Errorf("Normalize() accepted roughness %v", bad)
		}
	}
}

func TestNormalizeSeparationFloor(t *testing.T) {
	p := Default()
	p.Fibonacci.Separation = 0
	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	// Clamp to 0.05 plus the 0.1 connection floor.
	if math.Abs(p.Derived.Separation-0.15) > 1e-9 {
		t.Errorf("Derived.Separation = %v, want 0.15", p.Derived.Separation)
	}
}

func TestNormalizeMultiplierPadding(t *testing.T) {
	p := Default()
	p.Growth.Multipliers = []float64{0.5, 9.9}
	if err := p.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	m := p.Growth.Multipliers
	if len(m) != 5 {
		t.Fatalf("len(Multipliers) = %d, want 5", len(m))
	}
	if m[0] != 0.5 {
		t.Errorf("Multipliers[0] = %v, want 0.5", m[0])
	}
	if m[1] != 4.236 {
		t.Errorf("Multipliers[1] = %v, want clamped 4.236", m[1])
	}
	for i := 2; i < 5; i++ {
		if m[i] != 1.0 {
			t.Errorf("Multipliers[%d] = %v, want padded 1.0", i, m[i])
		}
	}
}

func TestNormalizeCopiesMultipliers(t *testing.T) {
	original := []float64{9.9, 0.5}
	p := Default()
	p.Growth.Multipliers = original

	snapshot := p
	if err := snapshot.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	// Clamping the snapshot must not reach back into the caller's slice.
	if original[0] != 9.9 || original[1] != 0.5 {
		t.Errorf("caller's multipliers mutated: %v", original)
	}
	if snapshot.Growth.Multipliers[0] != 4.236 {
		t.Errorf("snapshot multiplier = %v, want clamped 4.236", snapshot.Growth.Multipliers[0])
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"down", DirectionDown, false},
		{"UP", DirectionUp, false},
		{" spiral ", DirectionSpiral, false},
		{"sideways", DirectionDown, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := []byte("roots:\n  count: 8\n  direction: radial\nnoise:\n  roughness: 1.5\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Roots.Count != 8 {
		t.Errorf("Roots.Count = %d, want 8", p.Roots.Count)
	}
	if p.Roots.Direction != DirectionRadial {
		t.Errorf("Roots.Direction = %v, want radial", p.Roots.Direction)
	}
	if p.Noise.Roughness != 1.5 {
		t.Errorf("Noise.Roughness = %v, want 1.5", p.Noise.Roughness)
	}
	// Untouched fields keep their defaults.
	if p.Roots.Length != 10 {
		t.Errorf("Roots.Length = %v, want default 10", p.Roots.Length)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	p := Default()
	p.Roots.Count = 7
	p.Roots.Direction = DirectionSpiral
	if err := p.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if back.Roots.Count != 7 || back.Roots.Direction != DirectionSpiral {
		t.Errorf("round trip lost values: count=%d direction=%v",
			back.Roots.Count, back.Roots.Direction)
	}
}
