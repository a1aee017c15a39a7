package gted

// Options configures an Engine.
type Options struct {
	// RootPenalty is the cost of a forbidden operation of the RNA cost model.
	// Values below MinPenalty of the two trees (including 0) select MinPenalty.
	RootPenalty int
	// Heavy selects how Heavy strategy entries are replaced.
	Heavy HeavyPolicy
	// HeavyFallback is the substitute strategy for policy HeavyFixed.
	HeavyFallback Strategy
	// Seed seeds the random source of policy HeavyRandom. Every run restarts
	// from this seed, so repeated runs replace Heavy entries identically.
	Seed int64
	// Costs overrides the RNA cost model if non-nil.
	Costs CostModel
}

// DefaultOptions returns the default engine options: derived root penalty,
// random replacement of Heavy entries with seed 1.
func DefaultOptions() Options {
	return Options{
		Heavy:         HeavyRandom,
		HeavyFallback: T1Left,
		Seed:          1,
	}
}
