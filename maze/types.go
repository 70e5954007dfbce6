package maze

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
)

// MinPassages is the minimum number of passage cells per axis.
const MinPassages = 3

// WeightProbability is the chance that a passage cell receives terrain
// weight in instant mode.
const WeightProbability = 0.1

// WeightPalette lists the terrain weights drawn uniformly in instant mode.
var WeightPalette = [...]int{5, 10, 20}

// Source is the random source used for shuffling and terrain.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Step is one candidate-wall decision in construction order.
// Open reports whether the wall was removed to join two regions.
type Step struct {
	Pos  grid.Position
	Open bool
}

// Result is a generated maze.
type Result struct {
	Rows     int
	Cols     int
	Animated bool

	// Walls holds every solid cell.
	Walls mapset.Set[grid.Position]

	// Weights maps weighted passage cells to their entry cost.
	// Empty in animated mode.
	Weights map[grid.Position]int

	Start grid.Position
	Goal  grid.Position

	// Steps lists the candidate-wall decisions in shuffled order.
	Steps []Step
}

// Option configures Generate.
type Option func(*Options)

// Options holds parameters for one Generate call.
type Options struct {
	// Animated suppresses weighted terrain.
	Animated bool

	// Source drives the shuffle and terrain draws.
	Source Source
}

// DefaultOptions returns instant mode and a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Animated: false,
		Source:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithAnimated selects animated (true) or instant (false) mode.
func WithAnimated(animated bool) Option {
	return func(o *Options) {
		o.Animated = animated
	}
}

// WithSource injects a random source. A nil source is ignored.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithSeed is shorthand for WithSource(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithSource(rand.New(rand.NewSource(seed)))
}
