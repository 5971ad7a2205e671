// Package react is a small spreadsheet-style dataflow engine. Input cells hold
// values set by the caller, compute cells derive their value from other cells
// through a pure function, and listeners on compute cells are told about
// changes once per update.
//
// A compute cell can only depend on cells that already exist, so the graph is
// acyclic by construction. Cells are never removed.
//
// A Reactor is owned by a single goroutine. Listeners and compute functions
// must not mutate the Reactor that invoked them; doing so panics.
package react

import (
	"fmt"
	"log/slog"

	"github.com/petermattis/goid"
)

// ComputeFunc derives a compute cell's value from its dependencies' values,
// passed in the order the dependencies were declared.
type ComputeFunc[T comparable] func(values []T) T

// Listener is told the new value of a compute cell after a round in which
// it changed.
type Listener[T comparable] func(value T)

type Reactor[T comparable] struct {
	inputs   []inputCell[T]
	computes []computeCell[T]

	logger     *slog.Logger
	observer   Observer
	ownerCheck bool
	owner      int64
	busy       bool
}

func New[T comparable](opts ...Option) *Reactor[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	r := &Reactor[T]{
		logger:     o.logger,
		observer:   o.observer,
		ownerCheck: o.ownerCheck,
	}
	if r.ownerCheck {
		r.owner = goid.Get()
	}
	return r
}

// CreateInput adds an input cell holding initial.
func (r *Reactor[T]) CreateInput(initial T) InputCellID {
	r.enter("CreateInput")
	defer r.leave()

	id := InputCellID(len(r.inputs))
	r.inputs = append(r.inputs, inputCell[T]{value: initial})
	r.debug("input created", "id", id)
	return id
}

// CreateCompute adds a compute cell whose value is f applied to the values of
// deps. The value is computed before CreateCompute returns.
//
// If a dependency does not exist a *DependencyError naming it is returned and
// the graph is left untouched. With several bad dependencies the first one
// in argument order is reported.
func (r *Reactor[T]) CreateCompute(deps []CellID, f ComputeFunc[T]) (ComputeCellID, error) {
	if f == nil {
		panic("react: nil compute function")
	}
	r.enter("CreateCompute")
	defer r.leave()

	for _, dep := range deps {
		if !r.exists(dep) {
			return 0, &DependencyError{ID: dep}
		}
	}

	dependencies := make([]CellID, len(deps))
	copy(dependencies, deps)
	value := f(r.gather(dependencies))

	id := ComputeCellID(len(r.computes))
	for _, dep := range dependencies {
		r.addDependent(dep, id)
	}
	r.computes = append(r.computes, computeCell[T]{
		value:        value,
		dependencies: dependencies,
		compute:      f,
	})
	r.debug("compute created", "id", id, "deps", len(dependencies))
	return id, nil
}

// Value returns the current value of a cell, or false if it doesn't exist.
func (r *Reactor[T]) Value(id CellID) (v T, ok bool) {
	switch id := id.(type) {
	case InputCellID:
		if r.validInput(id) {
			return r.inputs[id].value, true
		}
	case ComputeCellID:
		if r.validCompute(id) {
			return r.computes[id].value, true
		}
	}
	return v, false
}

func (r *Reactor[T]) Inputs() int {
	return len(r.inputs)
}

func (r *Reactor[T]) Computes() int {
	return len(r.computes)
}

// Dependencies returns a copy of the dependency list of a compute cell, in
// declaration order.
func (r *Reactor[T]) Dependencies(id ComputeCellID) ([]CellID, bool) {
	if !r.validCompute(id) {
		return nil, false
	}
	deps := make([]CellID, len(r.computes[id].dependencies))
	copy(deps, r.computes[id].dependencies)
	return deps, true
}

// Dependents returns a copy of the compute cells reading id directly, in
// ascending order.
func (r *Reactor[T]) Dependents(id CellID) ([]ComputeCellID, bool) {
	if !r.exists(id) {
		return nil, false
	}
	src := r.dependentsOf(id)
	out := make([]ComputeCellID, len(src))
	copy(out, src)
	return out, true
}

func (r *Reactor[T]) enter(op string) {
	if r.ownerCheck {
		if gid := goid.Get(); gid != r.owner {
			panic(fmt.Sprintf("react: %s called from goroutine %d, reactor is owned by %d", op, gid, r.owner))
		}
	}
	if r.busy {
		panic(fmt.Sprintf("react: %s called re-entrantly from a compute function or listener", op))
	}
	r.busy = true
}

func (r *Reactor[T]) leave() {
	r.busy = false
}

func (r *Reactor[T]) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
