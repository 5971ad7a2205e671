package react

import (
	"errors"
	"fmt"
)

var (
	// ErrNonexistentCell is returned when a compute cell id is unknown.
	ErrNonexistentCell = errors.New("react: nonexistent cell")

	// ErrNonexistentCallback is returned when a callback id is not registered
	// on the cell, including when it was already removed.
	ErrNonexistentCallback = errors.New("react: nonexistent callback")
)

// DependencyError reports a dependency that does not name an existing cell.
type DependencyError struct {
	ID CellID
}

func (e *DependencyError) Error() string {
	if e.ID == nil {
		return "react: nil dependency"
	}
	return fmt.Sprintf("react: nonexistent dependency %s", e.ID)
}
