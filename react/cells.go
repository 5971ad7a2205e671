package react

type inputCell[T comparable] struct {
	value      T
	dependents []ComputeCellID
}

type computeCell[T comparable] struct {
	value        T
	dependencies []CellID // declaration order, passed positionally
	dependents   []ComputeCellID
	compute      ComputeFunc[T]

	listeners    []listener[T]
	nextCallback CallbackID
}

func (r *Reactor[T]) validInput(id InputCellID) bool {
	return id >= 0 && int(id) < len(r.inputs)
}

func (r *Reactor[T]) validCompute(id ComputeCellID) bool {
	return id >= 0 && int(id) < len(r.computes)
}

func (r *Reactor[T]) exists(id CellID) bool {
	switch id := id.(type) {
	case InputCellID:
		return r.validInput(id)
	case ComputeCellID:
		return r.validCompute(id)
	default:
		return false
	}
}

// addDependent records sub as a dependent of dep. sub is always the newest
// compute cell, so dependents stay sorted and a repeated dependency only
// ever shows up as the last element.
func (r *Reactor[T]) addDependent(dep CellID, sub ComputeCellID) {
	var subs *[]ComputeCellID
	switch dep := dep.(type) {
	case InputCellID:
		subs = &r.inputs[dep].dependents
	case ComputeCellID:
		subs = &r.computes[dep].dependents
	}
	if n := len(*subs); n > 0 && (*subs)[n-1] == sub {
		return
	}
	*subs = append(*subs, sub)
}

func (r *Reactor[T]) dependentsOf(id CellID) []ComputeCellID {
	switch id := id.(type) {
	case InputCellID:
		return r.inputs[id].dependents
	case ComputeCellID:
		return r.computes[id].dependents
	}
	return nil
}

// gather reads the current values of deps. Every id must exist.
func (r *Reactor[T]) gather(deps []CellID) []T {
	values := make([]T, len(deps))
	for i, dep := range deps {
		switch dep := dep.(type) {
		case InputCellID:
			values[i] = r.inputs[dep].value
		case ComputeCellID:
			values[i] = r.computes[dep].value
		}
	}
	return values
}
