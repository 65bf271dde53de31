package evaluate

import "math/rand"

const (
	// DefaultFraction is the share of rows masked per feature column.
	DefaultFraction = 0.1
	// DefaultNeighbors is the KNN neighbour count.
	DefaultNeighbors = 5
	// DefaultEpsilon is the tolerance for a perfect recovery: agreement to two
	// decimal places.
	DefaultEpsilon = 0.005
)

type config struct {
	fraction    float64
	neighbors   int
	seed        int64
	seeded      bool
	rng         *rand.Rand
	epsilon     float64
	categorical []string
	weighted    bool
	clamp       bool
	strict      bool
}

func defaultConfig() config {
	return config{
		fraction:  DefaultFraction,
		neighbors: DefaultNeighbors,
		epsilon:   DefaultEpsilon,
	}
}

// Option configures an evaluation.
type Option func(*config)

// WithFraction sets the share of rows masked per feature column.
func WithFraction(f float64) Option { return func(c *config) { c.fraction = f } }

// WithNeighbors sets the KNN neighbour count.
func WithNeighbors(k int) Option { return func(c *config) { c.neighbors = k } }

// WithSeed makes the run reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed, c.seeded = seed, true }
}

// WithRand supplies the random source directly. It wins over WithSeed.
func WithRand(r *rand.Rand) Option { return func(c *config) { c.rng = r } }

// WithEpsilon sets the tolerance for a perfect recovery.
func WithEpsilon(eps float64) Option { return func(c *config) { c.epsilon = eps } }

// WithCategorical encodes extra columns as categories, on top of the
// string-valued ones.
func WithCategorical(cols ...string) Option {
	return func(c *config) { c.categorical = append(c.categorical, cols...) }
}

// WithDistanceWeighting averages neighbours by inverse distance.
func WithDistanceWeighting() Option { return func(c *config) { c.weighted = true } }

// WithClampNeighbors lowers k to rows-1 on small datasets instead of failing
// with ErrTooFewRows.
func WithClampNeighbors() Option { return func(c *config) { c.clamp = true } }

// WithStrictAllMissing fails with ErrAllMissing when a feature column is
// fully masked, instead of filling it from the middle of its range.
func WithStrictAllMissing() Option { return func(c *config) { c.strict = true } }
