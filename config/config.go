// Package config provides parameter loading and validation for the root
// system generator.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// minConnectionRadius is added to the clamped separation so roots never
// fully coincide at the origin.
const minConnectionRadius = 0.1

// Params holds all generation inputs. A Params value is snapshotted per
// generation request; nothing mutates it during a run.
type Params struct {
	Roots      RootsParams     `yaml:"roots"`
	Fibonacci  FibonacciParams `yaml:"fibonacci"`
	Noise      NoiseParams     `yaml:"noise"`
	Growth     GrowthParams    `yaml:"growth"`
	Secondary  LevelParams     `yaml:"secondary"`
	Tertiary   LevelParams     `yaml:"tertiary"`
	Quaternary LevelParams     `yaml:"quaternary"`
	Leaves     LeafParams      `yaml:"leaves"`
	Branching  BranchingParams `yaml:"branching"`

	// Derived values computed by Normalize
	Derived DerivedParams `yaml:"-"`
}

// RootsParams holds main root shape parameters.
type RootsParams struct {
	Count       int       `yaml:"count"`        // number of main roots (1-13)
	Length      float64   `yaml:"length"`       // main root length (0.1-20)
	BaseWidth   float64   `yaml:"base_width"`   // radius at the base (0.01-1)
	Direction   Direction `yaml:"direction"`    // growth direction selector
	SpreadAngle float64   `yaml:"spread_angle"` // spread from center in degrees (0-90)
}

// FibonacciParams holds phyllotaxis distribution parameters.
type FibonacciParams struct {
	GoldenAngle float64 `yaml:"golden_angle"` // per-index rotation in degrees
	Separation  float64 `yaml:"separation"`   // base distance between roots (0-2)
}

// NoiseParams holds organic deformation parameters.
type NoiseParams struct {
	Scale     float64 `yaml:"scale"`     // noise sampling frequency (0.1-20)
	Roughness float64 `yaml:"roughness"` // deformation amplitude (0-2)
}

// GrowthParams holds per-root growth control. The five multipliers are
// selected cyclically by root index when individual growth is enabled.
type GrowthParams struct {
	Individual  bool      `yaml:"individual"`
	Multipliers []float64 `yaml:"multipliers"` // up to 5 values, each 0-4.236
}

// LevelParams holds the parameters of one branching level.
type LevelParams struct {
	Enable      bool    `yaml:"enable"`
	Density     float64 `yaml:"density"`                // branch candidates per parent (>=1)
	Length      float64 `yaml:"length"`                 // child curve length
	Width       float64 `yaml:"width"`                  // child radius
	BranchAngle float64 `yaml:"branch_angle,omitempty"` // degrees from parent
}

// LeafParams holds leaf instancing parameters.
type LeafParams struct {
	Enable bool    `yaml:"enable"`
	Size   float64 `yaml:"size"` // 0.01-1
}

// BranchingParams holds the Fibonacci depth controls.
type BranchingParams struct {
	Depth    int `yaml:"depth"`    // maximum branching level (1-6)
	Interval int `yaml:"interval"` // branches snap to every Nth curve segment (1-10)
}

// DerivedParams holds values computed from the normalized parameters.
type DerivedParams struct {
	GoldenAngleRad float64 // golden angle in radians
	SpreadAngleRad float64 // spread angle in radians
	Separation     float64 // clamped separation plus the connection floor
}

// Load reads parameters from a YAML file, merged over the embedded
// defaults, and normalizes them. An empty path yields the defaults alone.
func Load(path string) (*Params, error) {
	p := &Params{}
	if err := yaml.Unmarshal(defaultsYAML, p); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading parameter file: %w", err)
		}
		// Unmarshal into the same struct: only fields present in the
		// file overwrite the defaults.
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing parameter file: %w", err)
		}
	}

	if err := p.Normalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// Default returns the embedded default parameter set.
func Default() Params {
	p, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return *p
}

// WriteYAML writes the parameters to a YAML file.
func (p *Params) WriteYAML(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing parameter file: %w", err)
	}
	return nil
}

// Normalize clamps every bounded field to its documented range and computes
// the derived values. Bounded sliders clamp rather than reject; only
// non-finite values are an error.
func (p *Params) Normalize() error {
	fields := []struct {
		name string
		v    *float64
		min  float64
		max  float64
	}{
		{"roots.length", &p.Roots.Length, 0.1, 20},
		{"roots.base_width", &p.Roots.BaseWidth, 0.01, 1},
		{"roots.spread_angle", &p.Roots.SpreadAngle, 0, 90},
		{"fibonacci.golden_angle", &p.Fibonacci.GoldenAngle, 0, 360},
		{"fibonacci.separation", &p.Fibonacci.Separation, 0, 2},
		{"noise.scale", &p.Noise.Scale, 0.1, 20},
		{"noise.roughness", &p.Noise.Roughness, 0, 2},
		{"secondary.density", &p.Secondary.Density, 1, 50},
		{"secondary.length", &p.Secondary.Length, 0.1, 10},
		{"secondary.width", &p.Secondary.Width, 0.001, 0.5},
		{"secondary.branch_angle", &p.Secondary.BranchAngle, 0, 90},
		{"tertiary.density", &p.Tertiary.Density, 1, 50},
		{"tertiary.length", &p.Tertiary.Length, 0.1, 5},
		{"tertiary.width", &p.Tertiary.Width, 0.001, 0.2},
		{"quaternary.density", &p.Quaternary.Density, 1, 50},
		{"quaternary.length", &p.Quaternary.Length, 0.1, 3},
		{"quaternary.width", &p.Quaternary.Width, 0.001, 0.2},
		{"leaves.size", &p.Leaves.Size, 0.01, 1},
	}
	for _, f := range fields {
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
			return fmt.Errorf("%s is not finite", f.name)
		}
		*f.v = clamp(*f.v, f.min, f.max)
	}

	p.Roots.Count = clampInt(p.Roots.Count, 1, 13)
	p.Branching.Depth = clampInt(p.Branching.Depth, 1, 6)
	p.Branching.Interval = clampInt(p.Branching.Interval, 1, 10)
	if p.Roots.Direction < DirectionDown || p.Roots.Direction > DirectionSpiral {
		p.Roots.Direction = DirectionDown
	}

	// Growth multipliers: always five slots, cyclic by root index. The
	// slice is copied so clamping never writes through a caller's backing
	// array; a by-value Params stays a true snapshot.
	m := append([]float64(nil), p.Growth.Multipliers...)
	if len(m) > 5 {
		m = m[:5]
	}
	for len(m) < 5 {
		m = append(m, 1.0)
	}
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("growth.multipliers[%d] is not finite", i)
		}
		m[i] = clamp(v, 0, 4.236)
	}
	p.Growth.Multipliers = m

	p.Derived.GoldenAngleRad = p.Fibonacci.GoldenAngle * math.Pi / 180
	p.Derived.SpreadAngleRad = p.Roots.SpreadAngle * math.Pi / 180
	// Separation never reaches zero: the connection floor keeps every root
	// attached near the origin cluster.
	p.Derived.Separation = clamp(p.Fibonacci.Separation, 0.05, 2) + minConnectionRadius
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
