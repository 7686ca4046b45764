package classify

import "fmt"

// Role is the structural role of an occupied cell, derived from its 4-neighborhood
type Role uint8

const (
	Straight  Role = iota // two opposite neighbors
	Corner                // two adjacent neighbors
	Internal              // four neighbors
	Peninsula             // one neighbor
	Bridge                // three neighbors
	Empty                 // isolated, or fallback
)

func (r Role) String() string {
	switch r {
	case Straight:
		return "straight"
	case Corner:
		return "corner"
	case Internal:
		return "internal"
	case Peninsula:
		return "peninsula"
	case Bridge:
		return "bridge"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}
