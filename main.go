package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pthm-cable/rootgen/config"
	"github.com/pthm-cable/rootgen/export"
	"github.com/pthm-cable/rootgen/rootgen"
	"github.com/pthm-cable/rootgen/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	count := flag.Int("count", 1, "Number of meshes to generate (seed increments per mesh)")
	outPath := flag.String("out", "roots.obj", "Output OBJ path (count > 1 appends the seed)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	params, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to init output directory", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(params); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		s := rngSeed + int64(i)

		start := time.Now()
		mesh, stats, err := rootgen.GenerateWithStats(*params, s)
		if err != nil {
			slog.Error("generation failed", "seed", s, "error", err)
			os.Exit(1)
		}
		run := telemetry.FromGeneration(s, stats, time.Since(start))

		path := *outPath
		if *count > 1 {
			path = seededPath(*outPath, s)
		}
		if err := export.WriteOBJFile(path, &mesh); err != nil {
			slog.Error("export failed", "path", path, "error", err)
			os.Exit(1)
		}

		if err := om.WriteRun(run); err != nil {
			slog.Error("failed to write run stats", "error", err)
			os.Exit(1)
		}
		slog.Info("mesh generated", "path", path, "run", run)
	}
}

// seededPath turns base.obj into base-<seed>.obj.
func seededPath(path string, seed int64) string {
	ext := ".obj"
	base := path
	if n := len(path) - len(ext); n > 0 && path[n:] == ext {
		base = path[:n]
	}
	return base + "-" + strconv.FormatInt(seed, 10) + ext
}
