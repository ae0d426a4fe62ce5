package mireel

import (
	"math/rand/v2"
	"time"

	"github.com/edwinsyarief/mireel/outcome"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	rng       *rand.Rand
	source    outcome.Source
	observers []Observer
	originX   float64
	originY   float64
}

// Configures reels and groups on creation.
type Option func(*options)

// Sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) { opts.logger = logger }
}

// Sets the random source used for speed multipliers and, unless
// another source is given, outcomes. Pass a seeded source to get
// reproducible spins.
func WithRand(rng *rand.Rand) Option {
	return func(opts *options) { opts.rng = rng }
}

// Sets the outcome source used by auto stops and [Group.Slam]().
func WithSource(source outcome.Source) Option {
	return func(opts *options) { opts.source = source }
}

// Adds a group observer.
func WithObserver(observer Observer) Option {
	return func(opts *options) { opts.observers = append(opts.observers, observer) }
}

// Sets the logical position of the first reel window.
func WithOrigin(x, y float64) Option {
	return func(opts *options) { opts.originX, opts.originY = x, y }
}

func newOptions(opts []Option) *options {
	var result options
	for _, opt := range opts {
		opt(&result)
	}
	if result.logger == nil {
		result.logger = zap.NewNop()
	}
	if result.rng == nil {
		seed := uint64(time.Now().UnixNano())
		result.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &result
}
