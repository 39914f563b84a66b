package solver

import "github.com/alexanderramin/horizon/internal/scheduler"

// Options configures one Solve call. Unlike the CLI-facing
// configuration loaded from the environment, Options is an explicit
// struct so solving stays a pure function of its inputs — no ambient
// state, no env lookups (spec section 6).
type Options struct {
	Weights  scheduler.Weights
	Observer Observer
}

// DefaultOptions returns the spec's default composite-score weights and
// a NoopObserver.
func DefaultOptions() Options {
	return Options{Weights: scheduler.DefaultWeights(), Observer: NoopObserver{}}
}

func (o Options) normalized() Options {
	if o.Weights == (scheduler.Weights{}) {
		o.Weights = scheduler.DefaultWeights()
	}
	o.Observer = observerOrNoop(o.Observer)
	return o
}
