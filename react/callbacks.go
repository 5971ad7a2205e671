package react

import "slices"

type listener[T comparable] struct {
	id CallbackID
	fn Listener[T]
}

// AddCallback registers fn on a compute cell. It returns false if the cell
// does not exist.
func (r *Reactor[T]) AddCallback(id ComputeCellID, fn Listener[T]) (CallbackID, bool) {
	if fn == nil {
		panic("react: nil listener")
	}
	r.enter("AddCallback")
	defer r.leave()

	if !r.validCompute(id) {
		return 0, false
	}
	cell := &r.computes[id]
	cb := cell.nextCallback
	cell.nextCallback++
	cell.listeners = append(cell.listeners, listener[T]{id: cb, fn: fn})
	return cb, true
}

// RemoveCallback unregisters a listener. It returns ErrNonexistentCell or
// ErrNonexistentCallback if either id is unknown.
func (r *Reactor[T]) RemoveCallback(id ComputeCellID, cb CallbackID) error {
	r.enter("RemoveCallback")
	defer r.leave()

	if !r.validCompute(id) {
		return ErrNonexistentCell
	}
	cell := &r.computes[id]
	i := slices.IndexFunc(cell.listeners, func(l listener[T]) bool {
		return l.id == cb
	})
	if i < 0 {
		return ErrNonexistentCallback
	}
	cell.listeners = slices.Delete(cell.listeners, i, i+1)
	return nil
}

// notify fires the listeners of each changed cell with its current value.
func (r *Reactor[T]) notify(changed []ComputeCellID) (notified int) {
	for _, id := range changed {
		cell := &r.computes[id]
		for _, l := range cell.listeners {
			l.fn(cell.value)
			notified++
		}
	}
	return notified
}
