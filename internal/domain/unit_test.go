package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_Units(t *testing.T) {
	inv := NewInventory([]string{"10", "01", "02"}, []string{"09", "11"})

	all := inv.Units(UnitFilterAll)
	ids := make([]string, 0, len(all))
	for _, u := range all {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"01", "02", "09", "10", "11"}, ids)

	rooms := inv.Units(UnitFilterRooms)
	assert.Len(t, rooms, 3)
	for _, u := range rooms {
		assert.Equal(t, UnitKindRoom, u.Kind)
	}

	apartments := inv.Units(UnitFilterApartments)
	assert.Equal(t, []Unit{{ID: "09", Kind: UnitKindApartment}, {ID: "11", Kind: UnitKindApartment}}, apartments)
}

func TestInventory_Contains(t *testing.T) {
	inv := NewInventory([]string{"05"}, []string{"09"})

	assert.True(t, inv.Contains("05"))
	assert.False(t, inv.Contains("99"))

	kind, ok := inv.Kind("09")
	assert.True(t, ok)
	assert.Equal(t, UnitKindApartment, kind)
}

func TestLessUnitID(t *testing.T) {
	assert.True(t, LessUnitID("9", "10"))
	assert.False(t, LessUnitID("10", "9"))
	assert.True(t, LessUnitID("08", "A1"))
	assert.True(t, LessUnitID("A1", "B1"))
}

func TestOccupancySummary_Add(t *testing.T) {
	var s OccupancySummary
	s.Add(UnitState{Status: UnitAvailable})
	s.Add(UnitState{Status: UnitTurnaround})
	s.Add(UnitState{Status: UnitOccupied})

	assert.Equal(t, OccupancySummary{Total: 3, Available: 1, Occupied: 1, Turnaround: 1}, s)
}
