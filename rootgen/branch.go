package rootgen

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/geom"
)

// Branch site policy. Candidates survive only inside the mid-curve
// branching zone and a fixed-probability acceptance draw; both constants
// are algorithm policy, not user parameters.
const (
	branchZoneMin    = 0.2
	branchZoneMax    = 0.8
	branchAcceptProb = 0.4
	branchJitter     = 0.5
	downwardBias     = -0.3
)

// branchSite is a sampled branch origin on a parent curve. Sites are
// ephemeral: produced and consumed within one generation pass.
type branchSite struct {
	Pos     r3.Vec
	Tangent r3.Vec
	Normal  r3.Vec
	T       float64
	rng     *rand.Rand
}

// sampleBranches distributes count candidate sites at uniform parameter
// spacing along parent, snapped onto the curve's segment grid every
// interval segments, and returns the ones that pass the zone and
// acceptance rules. streams yields the per-candidate random stream; the
// stream travels with the accepted site so direction jitter draws from the
// same source.
func sampleBranches(parent geom.Curve, count, interval int, streams func(k int) *rand.Rand) (accepted []branchSite, candidates int) {
	if parent.Len() < 2 || count <= 0 {
		return nil, 0
	}
	segments := parent.Len() - 1
	for k := 0; k < count; k++ {
		t := (float64(k) + 0.5) / float64(count)
		t = snapParam(t, segments, interval)
		candidates++

		rng := streams(k)
		pass := rng.Float64() < branchAcceptProb
		if t < branchZoneMin || t > branchZoneMax || !pass {
			continue
		}

		i := nearestIndex(t, segments)
		accepted = append(accepted, branchSite{
			Pos:     parent.Points[i],
			Tangent: parent.Tangent(i),
			Normal:  parent.Normal(i),
			T:       parent.Param(i),
			rng:     rng,
		})
	}
	return accepted, candidates
}

// snapParam quantizes t onto the grid of every interval-th segment, so
// branches originate at segment boundaries of the parent's growth.
func snapParam(t float64, segments, interval int) float64 {
	if interval <= 1 || segments <= 0 {
		return t
	}
	step := float64(interval) / float64(segments)
	snapped := float64(int(t/step+0.5)) * step
	if snapped > 1 {
		snapped = 1
	}
	return snapped
}

func nearestIndex(t float64, segments int) int {
	i := int(t*float64(segments) + 0.5)
	if i < 0 {
		i = 0
	}
	if i > segments {
		i = segments
	}
	return i
}

// secondaryDirection blends the parent tangent and normal, perturbed by a
// small random jitter that shifts the mix between the two, scales the
// result to the child length and adds the fixed downward bias. A zero
// blend marks the site as degenerate.
func secondaryDirection(site branchSite, length float64) (r3.Vec, bool) {
	j := branchJitter * (site.rng.Float64()*2 - 1)
	blend := r3.Add(r3.Scale(1+j, site.Tangent), r3.Scale(1-j, site.Normal))
	if r3.Norm(blend) == 0 {
		return r3.Vec{}, false
	}
	return r3.Add(r3.Scale(length, r3.Unit(blend)), r3.Vec{Z: downwardBias}), true
}

// hairDirection returns a fully random direction biased toward the lower
// hemisphere, used for tertiary and finer hair roots.
func hairDirection(length float64, rng *rand.Rand) r3.Vec {
	for tries := 0; tries < 8; tries++ {
		v := r3.Vec{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: -rng.Float64(),
		}
		if r3.Norm(v) > 1e-9 {
			return r3.Scale(length, r3.Unit(v))
		}
	}
	return r3.Vec{Z: -length}
}
