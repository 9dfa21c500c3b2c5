// Package telemetry records per-run generation statistics and writes them
// as structured experiment output.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rootgen/rootgen"
)

// RunStats is one generation run as a CSV record.
type RunStats struct {
	Seed            int64   `csv:"seed"`
	Roots           int     `csv:"roots"`
	DegenerateRoots int     `csv:"degenerate_roots"`
	DurationMS      float64 `csv:"duration_ms"`

	// Branch sampling outcomes, secondary and tertiary separately, all
	// deeper levels folded together.
	SecondaryCandidates int `csv:"secondary_candidates"`
	SecondaryAccepted   int `csv:"secondary_accepted"`
	TertiaryCandidates  int `csv:"tertiary_candidates"`
	TertiaryAccepted    int `csv:"tertiary_accepted"`
	FinerCandidates     int `csv:"finer_candidates"`
	FinerAccepted       int `csv:"finer_accepted"`
	Leaves              int `csv:"leaves"`

	RawVertices int     `csv:"raw_vertices"`
	Vertices    int     `csv:"vertices"`
	Triangles   int     `csv:"triangles"`
	WeldRatio   float64 `csv:"weld_ratio"`

	// Distribution of pre-weld vertex counts across root indices.
	RootVertMean float64 `csv:"root_vert_mean"`
	RootVertP10  float64 `csv:"root_vert_p10"`
	RootVertP50  float64 `csv:"root_vert_p50"`
	RootVertP90  float64 `csv:"root_vert_p90"`
}

// FromGeneration flattens generator statistics into a CSV record.
func FromGeneration(seed int64, s rootgen.Stats, duration time.Duration) RunStats {
	r := RunStats{
		Seed:            seed,
		Roots:           s.Roots,
		DegenerateRoots: s.DegenerateRoots,
		DurationMS:      float64(duration.Microseconds()) / 1000,
		Leaves:          s.Leaves,
		RawVertices:     s.RawVertices,
		Vertices:        s.Vertices,
		Triangles:       s.Triangles,
	}
	if s.RawVertices > 0 {
		r.WeldRatio = float64(s.Vertices) / float64(s.RawVertices)
	}
	for _, lv := range s.Levels {
		switch {
		case lv.Level == 2:
			r.SecondaryCandidates += lv.Candidates
			r.SecondaryAccepted += lv.Accepted
		case lv.Level == 3:
			r.TertiaryCandidates += lv.Candidates
			r.TertiaryAccepted += lv.Accepted
		case lv.Level > 3:
			r.FinerCandidates += lv.Candidates
			r.FinerAccepted += lv.Accepted
		}
	}

	verts := make([]float64, len(s.RootVertices))
	for i, v := range s.RootVertices {
		verts[i] = float64(v)
	}
	r.RootVertMean, r.RootVertP10, r.RootVertP50, r.RootVertP90 = ComputeVertexStats(verts)
	return r
}

// ComputeVertexStats calculates mean and percentiles from per-root vertex
// counts.
func ComputeVertexStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", r.Seed),
		slog.Int("roots", r.Roots),
		slog.Int("degenerate_roots", r.DegenerateRoots),
		slog.Float64("duration_ms", r.DurationMS),
		slog.Int("secondary_accepted", r.SecondaryAccepted),
		slog.Int("tertiary_accepted", r.TertiaryAccepted),
		slog.Int("leaves", r.Leaves),
		slog.Int("vertices", r.Vertices),
		slog.Int("triangles", r.Triangles),
		slog.Float64("weld_ratio", r.WeldRatio),
	)
}
