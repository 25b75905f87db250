package artworks

import "strings"

// Status is the lifecycle label of an artwork. The stored strings match
// the historical records ("On Exhibition" carries a space).
type Status string

const (
	StatusAcquired     Status = "Acquired"
	StatusOnExhibition Status = "On Exhibition"
	StatusSold         Status = "Sold"
	StatusRented       Status = "Rented"
	StatusRestored     Status = "Restored"
)

// transitions lists the legal successor statuses. Sold is terminal: a
// sold artwork has left the collection and no operation may relabel it.
var transitions = map[Status][]Status{
	StatusAcquired:     {StatusOnExhibition, StatusSold, StatusRented, StatusRestored},
	StatusOnExhibition: {StatusAcquired, StatusSold, StatusRestored},
	StatusRented:       {StatusAcquired},
	StatusRestored:     {StatusAcquired, StatusOnExhibition},
	StatusSold:         {},
}

// ParseStatus resolves a user-supplied label to a known Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.TrimSpace(s)) {
	case StatusAcquired:
		return StatusAcquired, true
	case StatusOnExhibition:
		return StatusOnExhibition, true
	case StatusSold:
		return StatusSold, true
	case StatusRented:
		return StatusRented, true
	case StatusRestored:
		return StatusRestored, true
	}
	return "", false
}

// CanTransition reports whether an artwork currently labelled from may
// move to to. A no-op transition (from == to) is never legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
