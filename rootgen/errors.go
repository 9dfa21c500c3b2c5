package rootgen

import "errors"

// Error kinds returned by Generate. Bounded numeric inputs are clamped
// rather than rejected, so ErrInvalidParameter only surfaces for values no
// clamp can fix (NaN, Inf). Degenerate branches are skipped locally during
// a run; ErrDegenerateGeometry only surfaces when the whole system
// collapses. On any error the caller's previous mesh is untouched:
// Generate either returns a complete new mesh or no mesh at all.
var (
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrGenerationFailure  = errors.New("generation failure")
)
