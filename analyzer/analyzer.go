package analyzer

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"bardscore/active"
	"bardscore/array"
)

// Score is the grade level computed for one play.
type Score struct {
	Title string
	Value float64
}

// Option is a functional option for configuring an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// WithPoolOptions forwards options to the active object pool backing each
// run, e.g. active.WithWorkerCount.
func WithPoolOptions(opts ...active.Option) Option {
	return func(a *Analyzer) {
		a.poolOpts = append(a.poolOpts, opts...)
	}
}

// WithResultHook registers a callback invoked for every play as its score
// is harvested, in harvest order. Useful for progress reporting.
func WithResultHook(hook func(title string, score float64)) Option {
	return func(a *Analyzer) {
		a.onResult = hook
	}
}

// Analyzer scores a corpus of plays concurrently, one active object per
// play.
type Analyzer struct {
	corpus   map[string]string
	log      *zap.Logger
	poolOpts []active.Option
	onResult func(title string, score float64)
}

// New creates an Analyzer over a title→content corpus.
func New(corpus map[string]string, opts ...Option) *Analyzer {
	a := &Analyzer{
		corpus: corpus,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Scores runs the analysis: it builds one active object per play, starts
// them all, and harvests the grade level scores sequentially in the pool's
// construction order. The first failure — of a computation, or of the wait
// itself via ctx — aborts the whole run.
func (a *Analyzer) Scores(ctx context.Context) (*array.Array[Score], error) {
	objects, err := active.MakeActiveObjects(a.score, a.corpus, a.poolOpts...)
	if err != nil {
		return nil, err
	}

	active.StartAll(objects)
	a.log.Debug("started scoring", zap.Int("plays", objects.Size()))

	results, err := array.NewWithCapacity[Score](objects.Size())
	if err != nil {
		return nil, err
	}

	it := objects.Iterator()
	for it.HasNext() {
		ao, err := it.Next()
		if err != nil {
			return nil, err
		}

		value, err := ao.GetWithContext(ctx)
		if err != nil {
			title, _ := ao.Params()
			return nil, fmt.Errorf("scoring %s: %w", title, err)
		}

		title, _ := ao.Params()
		results.Add(Score{Title: title, Value: value})
		if a.onResult != nil {
			a.onResult(title, value)
		}
	}
	return results, nil
}

// Run is Scores followed by formatting: it returns one result line per
// play, in harvest order.
func (a *Analyzer) Run(ctx context.Context) (*array.Array[string], error) {
	scores, err := a.Scores(ctx)
	if err != nil {
		return nil, err
	}

	results, err := array.NewWithCapacity[string](scores.Size())
	if err != nil {
		return nil, err
	}
	if err := scores.ForEach(func(s Score) error {
		results.Add(FormatResult(s.Title, s.Value))
		return nil
	}); err != nil {
		return nil, err
	}
	return results, nil
}

// score is the processing function run inside each active object.
func (a *Analyzer) score(ctx context.Context, title, play string) (float64, error) {
	stripped := StripNonEssentialPortions(play)
	value := GradeLevel(stripped)
	a.log.Debug("scored play",
		zap.String("title", title),
		zap.Float64("score", value))
	return value, nil
}

// FormatResult renders one result line, e.g.
// "9.47 (9th grade) is the score for Hamlet".
func FormatResult(title string, score float64) string {
	return fmt.Sprintf("%.2f (%s grade) is the score for %s",
		score, OrdinalSuffix(score), title)
}

// SortDescending returns the scores ordered highest first, titles breaking
// ties.
func SortDescending(scores *array.Array[Score]) []Score {
	out := scores.ToSlice()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Title < out[j].Title
	})
	return out
}
