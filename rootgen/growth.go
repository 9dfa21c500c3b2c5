package rootgen

import "github.com/pthm-cable/rootgen/config"

// growthScale resolves the per-root length multiplier. With individual
// growth disabled every root scales by 1.0; enabled, the multiplier is a
// direct cyclic lookup over the five user values regardless of root count.
func growthScale(g config.GrowthParams, index int) float64 {
	if !g.Individual || len(g.Multipliers) == 0 {
		return 1.0
	}
	return g.Multipliers[index%len(g.Multipliers)]
}
