package rootgen

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/geom"
)

func testStreams(seed int64) func(k int) *rand.Rand {
	return func(k int) *rand.Rand { return stream(seed, 0, 1, k) }
}

func TestSampleBranchesCandidateCount(t *testing.T) {
	parent := geom.Line(r3.Vec{}, r3.Vec{Z: -10}, 50)
	for _, density := range []int{1, 8, 13, 50} {
		_, candidates := sampleBranches(parent, density, 1, testStreams(1))
		if candidates != density {
			t.Errorf("density %d produced %d candidates", density, candidates)
		}
	}
}

func TestSampleBranchesZone(t *testing.T) {
	parent := geom.Line(r3.Vec{}, r3.Vec{Z: -10}, 50)
	for seed := int64(0); seed < 10; seed++ {
		sites, _ := sampleBranches(parent, 20, 1, testStreams(seed))
		for _, s := range sites {
			if s.T < branchZoneMin-1e-9 || s.T > branchZoneMax+1e-9 {
				t.Fatalf("seed %d: site at t=%v outside branching zone", seed, s.T)
			}
		}
	}
}

func TestSampleBranchesDeterministic(t *testing.T) {
	parent := geom.Line(r3.Vec{}, r3.Vec{Z: -10}, 50)
	a, _ := sampleBranches(parent, 13, 3, testStreams(7))
	b, _ := sampleBranches(parent, 13, 3, testStreams(7))
	if len(a) != len(b) {
		t.Fatalf("runs accepted %d vs %d sites", len(a), len(b))
	}
	for i := range a {
		if a[i].T != b[i].T || r3.Norm(r3.Sub(a[i].Pos, b[i].Pos)) != 0 {
			t.Fatalf("site %d differs between identical runs", i)
		}
	}
}

func TestSampleBranchesAcceptanceRate(t *testing.T) {
	parent := geom.Line(r3.Vec{}, r3.Vec{Z: -100}, 50)
	total, accepted := 0, 0
	for seed := int64(0); seed < 40; seed++ {
		sites, candidates := sampleBranches(parent, 50, 1, testStreams(seed))
		total += candidates
		accepted += len(sites)
	}
	// Zone covers 0.6 of the curve, acceptance is 0.4: expect ~24%.
	rate := float64(accepted) / float64(total)
	if rate < 0.18 || rate > 0.30 {
		t.Errorf("acceptance rate = %v over %d candidates, want ~0.24", rate, total)
	}
}

func TestSampleBranchesShortParent(t *testing.T) {
	short := geom.Curve{Points: []r3.Vec{{}}, Radii: []float64{0}}
	sites, candidates := sampleBranches(short, 8, 1, testStreams(1))
	if len(sites) != 0 || candidates != 0 {
		t.Errorf("single-point parent produced %d candidates", candidates)
	}
}

func TestSnapParam(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		segments int
		interval int
		want     float64
	}{
		{"no interval", 0.37, 49, 1, 0.37},
		{"snap to grid", 0.45, 10, 2, 0.4},
		{"clamp to end", 0.99, 10, 3, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snapParam(tt.t, tt.segments, tt.interval)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("snapParam(%v, %d, %d) = %v, want %v", tt.t, tt.segments, tt.interval, got, tt.want)
			}
		})
	}
}

func TestSecondaryDirectionLengthAndBias(t *testing.T) {
	parent := geom.Line(r3.Vec{}, r3.Vec{Z: -10}, 50)
	for seed := int64(0); seed < 20; seed++ {
		sites, _ := sampleBranches(parent, 20, 1, testStreams(seed))
		for _, s := range sites {
			dir, ok := secondaryDirection(s, 3.82)
			if !ok {
				continue
			}
			// Removing the downward bias leaves a vector of the child length.
			unbiased := r3.Sub(dir, r3.Vec{Z: downwardBias})
			if math.Abs(r3.Norm(unbiased)-3.82) > 1e-9 {
				t.Fatalf("unbiased length = %v, want 3.82", r3.Norm(unbiased))
			}
		}
	}
}

func TestHairDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		dir := hairDirection(2.36, rng)
		if math.Abs(r3.Norm(dir)-2.36) > 1e-9 {
			t.Fatalf("draw %d: length %v, want 2.36", i, r3.Norm(dir))
		}
		if dir.Z > 0 {
			t.Fatalf("draw %d: upward hair direction %v", i, dir)
		}
	}
}
