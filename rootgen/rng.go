package rootgen

import "math/rand"

// Random draws for mixed-direction selection, branch acceptance and
// fine-root directions come from independent streams keyed by
// (root index, branch level, branch index). Splitting the work across
// workers never changes which stream a branch reads, so output is
// reproducible for a fixed seed regardless of parallelism.

// mix64 is one splitmix64 scramble step.
func mix64(v uint64) uint64 {
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// stream returns the deterministic random stream for one branch.
func stream(seed int64, root, level, branch int) *rand.Rand {
	h := mix64(uint64(seed))
	h = mix64(h ^ uint64(root))
	h = mix64(h ^ uint64(level)<<24)
	h = mix64(h ^ uint64(branch)<<8)
	return rand.New(rand.NewSource(int64(h)))
}
