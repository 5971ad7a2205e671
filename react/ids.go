package react

import "strconv"

// CellID is either an InputCellID or a ComputeCellID.
type CellID interface {
	isCellID()
	String() string
}

// InputCellID identifies an input cell within its Reactor.
type InputCellID int

// ComputeCellID identifies a compute cell within its Reactor.
type ComputeCellID int

// CallbackID identifies a listener on a single compute cell. It is not
// unique across cells.
type CallbackID int

func (InputCellID) isCellID()   {}
func (ComputeCellID) isCellID() {}

func (id InputCellID) String() string {
	return "input#" + strconv.Itoa(int(id))
}

func (id ComputeCellID) String() string {
	return "compute#" + strconv.Itoa(int(id))
}

func (id CallbackID) String() string {
	return "callback#" + strconv.Itoa(int(id))
}
