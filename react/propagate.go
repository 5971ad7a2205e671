package react

import (
	"container/heap"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// SetValue sets the value of an input cell and brings every compute cell
// that depends on it up to date. Listeners of compute cells whose value
// changed fire once each, with the final value, after all recomputation is
// done.
//
// It returns false if the cell does not exist. Writing the value the cell
// already holds is a successful no-op.
func (r *Reactor[T]) SetValue(id InputCellID, v T) bool {
	r.enter("SetValue")
	defer r.leave()

	if !r.validInput(id) {
		return false
	}
	cell := &r.inputs[id]
	if cell.value == v {
		return true
	}
	cell.value = v

	start := time.Now()
	changed, recomputed := r.propagate(cell.dependents)
	notified := r.notify(changed)

	stats := RoundStats{
		Input:      id,
		Recomputed: recomputed,
		Changed:    len(changed),
		Notified:   notified,
		Duration:   time.Since(start),
	}
	r.debug("round complete",
		"input", id,
		"recomputed", stats.Recomputed,
		"changed", stats.Changed,
		"notified", stats.Notified,
		"duration", stats.Duration,
	)
	if r.observer != nil {
		r.observer.ObserveRound(stats)
	}
	return true
}

// propagate recomputes every compute cell reachable from roots exactly once.
// Cells are taken lowest id first; a cell only depends on lower ids, so all
// of its dependencies are final by the time it runs. The returned cells are
// in ascending order.
func (r *Reactor[T]) propagate(roots []ComputeCellID) (changed []ComputeCellID, recomputed int) {
	seen := mapset.NewThreadUnsafeSet(roots...)
	pending := make(frontier, len(roots))
	copy(pending, roots)
	heap.Init(&pending)

	for pending.Len() > 0 {
		id := heap.Pop(&pending).(ComputeCellID)
		cell := &r.computes[id]

		next := cell.compute(r.gather(cell.dependencies))
		recomputed++
		if next != cell.value {
			changed = append(changed, id)
		}
		cell.value = next

		for _, sub := range cell.dependents {
			if seen.Add(sub) {
				heap.Push(&pending, sub)
			}
		}
	}
	return changed, recomputed
}

// frontier is a min-heap of compute cells pending recomputation.
type frontier []ComputeCellID

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i] < f[j] }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(ComputeCellID))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	id := old[n-1]
	*f = old[:n-1]
	return id
}
