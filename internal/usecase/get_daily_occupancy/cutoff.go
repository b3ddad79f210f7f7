package get_daily_occupancy

import (
	"time"

	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// CutoffPolicy решает, освобождён ли уже номер выезжающего гостя на дату date в момент now
type CutoffPolicy interface {
	IsPastCutoff(date types.DateString, now time.Time) bool
}

// HousekeepingCutoff после Hour часов по времени Location сегодняшний выезд считается состоявшимся.
// Правило действует только для текущего дня
type HousekeepingCutoff struct {
	Hour     int
	Location *time.Location
}

// NewHousekeepingCutoff создает правило выезда
func NewHousekeepingCutoff(hour int, loc *time.Location) *HousekeepingCutoff {
	if loc == nil {
		loc = time.UTC
	}
	return &HousekeepingCutoff{Hour: hour, Location: loc}
}

func (c *HousekeepingCutoff) IsPastCutoff(date types.DateString, now time.Time) bool {
	local := now.In(c.Location)
	return types.NewDateString(local) == date && local.Hour() >= c.Hour
}

// Today текущая дата по времени Location
func (c *HousekeepingCutoff) Today(now time.Time) types.DateString {
	return types.NewDateString(now.In(c.Location))
}
