// Package rootgen generates organic root system meshes. Main roots are
// distributed by golden-angle phyllotaxis, deformed with coherent noise,
// swept into tapered tubes and recursively branched into finer levels,
// all deterministically from a single seed.
package rootgen

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/pthm-cable/rootgen/config"
	"github.com/pthm-cable/rootgen/geom"
)

// Sampling densities per level. Main curves are sampled finely enough for
// the noise field; branch curves get progressively coarser, matching their
// shrinking on-screen footprint.
const (
	mainCurveSamples      = 50
	secondaryCurveSamples = 12
	hairCurveSamples      = 6

	profileResMain      = 8
	profileResSecondary = 6
	profileResHair      = 3

	weldDistance = 0.01

	// Roots are generated concurrently once the count makes the fan-out
	// worthwhile.
	parallelThreshold = 4

	// Stream spacing between parents within one level, larger than any
	// valid branch density so sibling parents never share a stream.
	branchStreamStride = 64

	invPhi = 0.6180339887498949
)

// Generate builds the root system mesh for the given parameters and seed.
// Out-of-range numeric parameters are clamped; only NaN or Inf inputs are
// rejected. Identical inputs always produce an identical mesh.
func Generate(p config.Params, seed int64) (geom.Mesh, error) {
	m, _, err := GenerateWithStats(p, seed)
	return m, err
}

// GenerateWithStats is Generate plus per-level sampling statistics.
func GenerateWithStats(p config.Params, seed int64) (geom.Mesh, Stats, error) {
	if err := p.Normalize(); err != nil {
		return geom.Mesh{}, Stats{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	d := newDeformer(seed, p.Noise.Scale, p.Noise.Roughness)
	n := p.Roots.Count
	results := make([]rootResult, n)

	if n >= parallelThreshold {
		workers := runtime.GOMAXPROCS(0)
		if workers > n {
			workers = n
		}
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = buildRoot(p, d, seed, i)
				}
			}()
		}
		for i := 0; i < n; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i := 0; i < n; i++ {
			results[i] = buildRoot(p, d, seed, i)
		}
	}

	// Merge in root-index order so the output is independent of worker
	// scheduling.
	var mesh geom.Mesh
	stats := Stats{Roots: n, RootVertices: make([]int, n)}
	for i, res := range results {
		stats.RootVertices[i] = res.mesh.VertexCount()
		if res.degenerate {
			stats.DegenerateRoots++
			continue
		}
		mesh.Append(res.mesh)
		stats.Leaves += res.leaves
		for _, lv := range res.levels {
			stats.Levels = mergeLevel(stats.Levels, lv)
		}
	}

	if mesh.IsEmpty() {
		return geom.Mesh{}, stats, fmt.Errorf("%w: no root produced geometry", ErrDegenerateGeometry)
	}

	stats.RawVertices = mesh.VertexCount()
	mesh.Weld(weldDistance)
	if err := mesh.CheckFinite(); err != nil {
		return geom.Mesh{}, stats, fmt.Errorf("%w: %v", ErrGenerationFailure, err)
	}
	stats.Vertices = mesh.VertexCount()
	stats.Triangles = mesh.TriangleCount()
	return mesh, stats, nil
}

// rootResult is the independent output of one main root and everything
// branching from it.
type rootResult struct {
	mesh       geom.Mesh
	levels     []LevelStats
	leaves     int
	degenerate bool
}

func buildRoot(p config.Params, d *deformer, seed int64, idx int) rootResult {
	var res rootResult

	rng := stream(seed, idx, 0, 0)
	scale := growthScale(p.Growth, idx)
	if scale < 1e-6 {
		res.degenerate = true
		return res
	}

	base := baseDirection(p.Roots.Direction, p.Roots.Length*scale, rng)
	dir := orientDirection(base, p.Roots.Direction, idx, p.Derived.GoldenAngleRad, p.Derived.SpreadAngleRad)
	origin := phylloOffset(idx, p.Derived.GoldenAngleRad, p.Derived.Separation)

	main := geom.Line(origin, dir, mainCurveSamples)
	d.Deform(&main)
	applyTaper(&main, p.Roots.BaseWidth, taperExpMain)
	res.mesh.Append(tubeMesh(main, profileResMain))
	res.levels = append(res.levels, LevelStats{Level: 1, Curves: 1})

	parents := []geom.Curve{main}
	deepest := 1
	for level := 2; level <= p.Branching.Depth; level++ {
		lp, ok := levelParams(p, level)
		if !ok || !lp.Enable {
			break
		}
		tally := LevelStats{Level: level}
		var children []geom.Curve
		for pi, parent := range parents {
			streams := func(k int) *rand.Rand {
				return stream(seed, idx, level-1, pi*branchStreamStride+k)
			}
			sites, candidates := sampleBranches(parent, int(lp.Density+0.5), p.Branching.Interval, streams)
			tally.Candidates += candidates
			for _, site := range sites {
				c, ok := growBranch(d, site, lp, level)
				if !ok {
					continue
				}
				if level == 2 {
					res.mesh.Append(tubeMesh(c, profileResSecondary))
				} else {
					res.mesh.Append(tubeMesh(c, profileResHair))
				}
				tally.Accepted++
				tally.Curves++
				children = append(children, c)
			}
		}
		res.levels = append(res.levels, tally)
		if len(children) == 0 {
			break
		}
		parents = children
		deepest = level
	}

	if p.Leaves.Enable && deepest >= 3 {
		res.leaves = placeLeaves(&res.mesh, parents, p.Leaves.Size)
	}
	return res
}

// growBranch builds the curve for one accepted branch site. Secondary
// branches follow the parent's frame; deeper levels grow in a random
// downward-biased direction with a constant radius.
func growBranch(d *deformer, site branchSite, lp config.LevelParams, level int) (geom.Curve, bool) {
	if level == 2 {
		dir, ok := secondaryDirection(site, lp.Length)
		if !ok {
			return geom.Curve{}, false
		}
		c := geom.Line(site.Pos, dir, secondaryCurveSamples)
		d.Deform(&c)
		applyTaper(&c, lp.Width, taperExpSecondary)
		return c, true
	}
	dir := hairDirection(lp.Length, site.rng)
	c := geom.Line(site.Pos, dir, hairCurveSamples)
	d.Deform(&c)
	applyConstantRadius(&c, lp.Width)
	return c, true
}

// levelParams maps a branching level to its parameters. Levels past the
// fourth reuse the quaternary settings shrunk by the golden ratio per
// extra level.
func levelParams(p config.Params, level int) (config.LevelParams, bool) {
	switch {
	case level == 2:
		return p.Secondary, true
	case level == 3:
		return p.Tertiary, true
	case level >= 4:
		lp := p.Quaternary
		for l := 5; l <= level; l++ {
			lp.Length *= invPhi
			lp.Width *= invPhi
		}
		return lp, true
	}
	return config.LevelParams{}, false
}

func mergeLevel(levels []LevelStats, lv LevelStats) []LevelStats {
	for i := range levels {
		if levels[i].Level == lv.Level {
			levels[i].Candidates += lv.Candidates
			levels[i].Accepted += lv.Accepted
			levels[i].Curves += lv.Curves
			return levels
		}
	}
	return append(levels, lv)
}
