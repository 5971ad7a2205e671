package react

import (
	"log/slog"
	"time"
)

// RoundStats summarizes one propagation round.
type RoundStats struct {
	Input      InputCellID
	Recomputed int // compute cells re-evaluated
	Changed    int // compute cells whose value differs after the round
	Notified   int // listener invocations
	Duration   time.Duration
}

// Observer receives a RoundStats after every propagation round. It runs on
// the owner's goroutine once all listeners have fired.
type Observer interface {
	ObserveRound(RoundStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(RoundStats)

func (f ObserverFunc) ObserveRound(s RoundStats) { f(s) }

type Option func(*options)

type options struct {
	logger     *slog.Logger
	observer   Observer
	ownerCheck bool
}

// WithLogger emits debug records for cell creation and propagation.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithOwnerCheck pins the Reactor to the goroutine that created it. Any
// mutating call from another goroutine panics.
func WithOwnerCheck() Option {
	return func(o *options) {
		o.ownerCheck = true
	}
}
