// Package evaluate measures how well KNN imputation recovers values removed
// at random from a dataset.
//
// Evaluate runs one linear pipeline:
//
//	encode -> scale -> mask -> impute -> inverse-scale -> score
//
// Categorical columns are replaced by category codes, features are min-max
// scaled into [0, 1], a fraction of rows is drawn with replacement per
// feature column and hidden, the hidden cells are filled by a KNNImputer, and
// the filled values are mapped back and compared with the originals.
//
// Errors:
//
//   - ErrInvalidFraction: fraction outside [0, 1].
//   - data.ErrUnknownColumn: target or categorical column not in the dataset.
//   - data.ErrEmptyDataset: no rows.
//   - ErrNoFeatures: only the target column.
//   - ErrTooFewRows: fewer rows than neighbours, unless WithClampNeighbors.
//   - ErrAllMissing: a fully masked feature column under WithStrictAllMissing.
package evaluate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/dataprep"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/stats"
)

// midpoint is the scaled value used for columns left without observed values:
// the middle of the range the scaler learned before masking.
const midpoint = 0.5

// Evaluate masks, imputes and scores the feature columns of ds (every column
// except target). ds is not modified.
func Evaluate(ds *data.Dataset, target string, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if ds == nil || ds.Nrow() == 0 {
		return nil, data.ErrEmptyDataset
	}
	if !ds.Has(target) {
		return nil, fmt.Errorf("target %q: %w", target, data.ErrUnknownColumn)
	}
	features := ds.Without(target)
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	rows := ds.Nrow()
	k := cfg.neighbors
	if rows < k {
		if !cfg.clamp {
			return nil, fmt.Errorf("%d rows, %d neighbours: %w", rows, k, ErrTooFewRows)
		}
		k = max(rows-1, 1)
	}

	// encode
	catCols, err := categoricalFeatures(ds, target, cfg.categorical)
	if err != nil {
		return nil, err
	}
	encoded, err := dataprep.CatCodes(ds, catCols...)
	if err != nil {
		return nil, err
	}
	dense, err := encoded.Dense(features...)
	if err != nil {
		return nil, err
	}
	original := denseRows(dense)
	log.Debug().Str("stage", "encode").Strs("columns", catCols).
		Int("rows", rows).Int("features", len(features)).Msg("encoded categorical columns")

	// scale
	scaler := stats.NewMinMaxScaler()
	scaled, err := scaler.FitTransform(original)
	if err != nil {
		return nil, err
	}

	// mask
	rng, seed := cfg.random()
	mask, err := dataprep.InjectMissing(scaled, cfg.fraction, rng)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("stage", "mask").Float64("fraction", cfg.fraction).
		Int("sampled", mask.Sampled).Int("cells", mask.Len()).Msg("injected missing values")

	// impute
	var imputeOpts []dataprep.KNNOption
	if !cfg.strict {
		fallback := make([]float64, len(features))
		for j := range fallback {
			fallback[j] = midpoint
		}
		imputeOpts = append(imputeOpts, dataprep.WithFallback(fallback))
	}
	if cfg.weighted {
		imputeOpts = append(imputeOpts, dataprep.WithDistanceWeighting())
	}
	imputer := dataprep.NewKNNImputer(k, imputeOpts...)
	filled, err := imputer.FitTransform(scaled)
	if err != nil {
		var am *dataprep.AllMissingError
		if errors.As(err, &am) {
			return nil, fmt.Errorf("feature %q: %w", features[am.Column], err)
		}
		return nil, err
	}
	var allMissing []string
	for _, j := range imputer.AllMissingColumns() {
		allMissing = append(allMissing, features[j])
	}
	if len(allMissing) > 0 {
		log.Warn().Strs("columns", allMissing).Msg("columns fully masked, filled from range midpoint")
	}
	log.Debug().Str("stage", "impute").Int("k", k).Bool("weighted", cfg.weighted).Msg("imputed masked cells")

	// inverse-scale
	restored, err := scaler.InverseTransform(filled)
	if err != nil {
		return nil, err
	}

	// score
	r := score(original, restored, mask, features, cfg.epsilon)
	r.Target = target
	r.Fraction = cfg.fraction
	r.Neighbors = k
	r.Epsilon = cfg.epsilon
	r.Seed = seed
	r.AllMissingColumns = allMissing
	log.Debug().Str("stage", "score").Int("perfect", r.Perfect).
		Int("imperfect", r.Imperfect).Float64("rmse", r.RMSE).Msg("scored imputations")
	return r, nil
}

func (c config) validate() error {
	if math.IsNaN(c.fraction) || c.fraction < 0 || c.fraction > 1 {
		return fmt.Errorf("%v: %w", c.fraction, ErrInvalidFraction)
	}
	if c.neighbors < 1 {
		return fmt.Errorf("%d: %w", c.neighbors, ErrInvalidNeighbors)
	}
	if math.IsNaN(c.epsilon) || c.epsilon < 0 {
		return fmt.Errorf("%v: %w", c.epsilon, ErrInvalidEpsilon)
	}
	return nil
}

// random returns the generator for one call and the seed behind it, nil when
// the caller supplied the generator.
func (c config) random() (*rand.Rand, *int64) {
	if c.rng != nil {
		return c.rng, nil
	}
	seed := c.seed
	if !c.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), &seed
}

// categoricalFeatures returns the string-valued columns plus the extra ones,
// in dataset order, never including the target.
func categoricalFeatures(ds *data.Dataset, target string, extra []string) ([]string, error) {
	for _, name := range extra {
		if !ds.Has(name) {
			return nil, fmt.Errorf("categorical %q: %w", name, data.ErrUnknownColumn)
		}
	}
	auto := dataprep.CategoricalColumns(ds)
	var cols []string
	for _, name := range ds.Names() {
		if name == target {
			continue
		}
		if slices.Contains(auto, name) || slices.Contains(extra, name) {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

func denseRows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
