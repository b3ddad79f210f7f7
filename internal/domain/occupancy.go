package domain

// UnitStatus is the derived state of a unit on a given day
type UnitStatus string

const (
	UnitAvailable  UnitStatus = "available"
	UnitOccupied   UnitStatus = "occupied"
	UnitCheckout   UnitStatus = "checkout"
	UnitTurnaround UnitStatus = "turnaround"
)

// UnitState is the occupancy of one unit on one day.
//
// Guest is set for Occupied and Checkout. OutgoingGuest and IncomingGuest
// are set only for Turnaround. CheckingIn marks an Occupied unit whose
// guest arrives that day.
type UnitState struct {
	UnitID        string
	Kind          UnitKind
	Status        UnitStatus
	Guest         *Guest
	OutgoingGuest *Guest
	IncomingGuest *Guest
	CheckingIn    bool
}

// OccupancySummary counts units per state
type OccupancySummary struct {
	Total      int
	Available  int
	Occupied   int
	Checkout   int
	Turnaround int
}

// Add accounts one unit state in the summary
func (s *OccupancySummary) Add(state UnitState) {
	s.Total++
	switch state.Status {
	case UnitAvailable:
		s.Available++
	case UnitOccupied:
		s.Occupied++
	case UnitCheckout:
		s.Checkout++
	case UnitTurnaround:
		s.Turnaround++
	}
}
