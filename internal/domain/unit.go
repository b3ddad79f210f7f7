package domain

import (
	"sort"
	"strconv"
)

// UnitKind distinguishes rooms from apartments
type UnitKind string

const (
	UnitKindRoom      UnitKind = "room"
	UnitKindApartment UnitKind = "apartment"
)

// UnitFilter restricts the set of units returned by Inventory.Units
type UnitFilter string

const (
	UnitFilterAll        UnitFilter = "all"
	UnitFilterRooms      UnitFilter = "rooms"
	UnitFilterApartments UnitFilter = "apartments"
)

func (f UnitFilter) IsValid() bool {
	return f == UnitFilterAll || f == UnitFilterRooms || f == UnitFilterApartments
}

// Unit is a bookable room or apartment
type Unit struct {
	ID   string
	Kind UnitKind
}

// Inventory is the fixed set of units of the hotel
type Inventory struct {
	kinds map[string]UnitKind
}

// NewInventory builds the inventory from disjoint room and apartment lists
func NewInventory(rooms, apartments []string) *Inventory {
	kinds := make(map[string]UnitKind, len(rooms)+len(apartments))
	for _, id := range rooms {
		kinds[id] = UnitKindRoom
	}
	for _, id := range apartments {
		kinds[id] = UnitKindApartment
	}
	return &Inventory{kinds: kinds}
}

// Contains reports whether unitID belongs to the inventory
func (inv *Inventory) Contains(unitID string) bool {
	_, ok := inv.kinds[unitID]
	return ok
}

// Kind returns the kind of the unit and whether it exists
func (inv *Inventory) Kind(unitID string) (UnitKind, bool) {
	k, ok := inv.kinds[unitID]
	return k, ok
}

// Units returns the units matching filter in numeric order
func (inv *Inventory) Units(filter UnitFilter) []Unit {
	units := make([]Unit, 0, len(inv.kinds))
	for id, kind := range inv.kinds {
		switch {
		case filter == UnitFilterRooms && kind != UnitKindRoom:
			continue
		case filter == UnitFilterApartments && kind != UnitKindApartment:
			continue
		}
		units = append(units, Unit{ID: id, Kind: kind})
	}

	sort.Slice(units, func(i, j int) bool {
		return LessUnitID(units[i].ID, units[j].ID)
	})
	return units
}

// LessUnitID orders unit codes numerically ("9" < "10"), falling back to
// string order for non-numeric codes
func LessUnitID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
