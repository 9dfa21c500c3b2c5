package rootgen

// Stats summarizes one generation run.
type Stats struct {
	Roots           int
	DegenerateRoots int
	Levels          []LevelStats
	Leaves          int
	RawVertices     int // before welding
	Vertices        int
	Triangles       int

	// RootVertices holds the pre-weld vertex count contributed by each
	// root index, degenerate roots included as zero.
	RootVertices []int
}

// LevelStats counts branch sampling outcomes for one generation level.
// Level 1 is the main roots; candidates and accepted stay zero there.
type LevelStats struct {
	Level      int
	Candidates int
	Accepted   int
	Curves     int
}
