package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// GuestStatus represents the lifecycle status of a stay
type GuestStatus string

const (
	GuestStatusActive    GuestStatus = "active"
	GuestStatusCompleted GuestStatus = "completed"
)

// IsValid reports whether s is a known status
func (s GuestStatus) IsValid() bool {
	return s == GuestStatusActive || s == GuestStatusCompleted
}

// AccommodationType is the kind of unit a stay was booked for
type AccommodationType string

const (
	AccommodationRoom      AccommodationType = "room"
	AccommodationApartment AccommodationType = "apartment"
)

func (a AccommodationType) IsValid() bool {
	return a == AccommodationRoom || a == AccommodationApartment
}

// BedType is the bed configuration requested by the guest
type BedType string

const (
	BedSingle          BedType = "single"
	BedDouble          BedType = "double"
	BedDoubleAndSingle BedType = "double_and_single"
)

func (b BedType) IsValid() bool {
	return b == BedSingle || b == BedDouble || b == BedDoubleAndSingle
}

// PaymentMethod is how the stay was (or will be) paid. Empty means unset
type PaymentMethod string

const (
	PaymentNotInformed PaymentMethod = "not_informed"
	PaymentPix         PaymentMethod = "pix"
	PaymentCard        PaymentMethod = "card"
	PaymentCash        PaymentMethod = "cash"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case "", PaymentNotInformed, PaymentPix, PaymentCard, PaymentCash:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of the stay. Empty means unset
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

func (p PaymentStatus) IsValid() bool {
	return p == "" || p == PaymentPaid || p == PaymentPending
}

// Guest is a stay record: one party occupying one unit for a half-open
// date interval [CheckIn, CheckOut)
type Guest struct {
	ID                string
	UnitID            string
	Bed               string // bed count as typed at the desk
	Name              string // several guests may be comma-separated
	Document          string // CPF, optional
	Phone             string
	CheckIn           types.DateString
	CheckOut          types.DateString
	Price             float64
	AccommodationType AccommodationType
	BedType           BedType
	Status            GuestStatus
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	Notes             string
	CheckoutReleased  bool
	SchemaVersion     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the stay has not been marked completed
func (g *Guest) IsActive() bool {
	return g.Status == GuestStatusActive
}

// Overlaps reports whether the stay's interval strictly overlaps [checkIn, checkOut).
// Touching intervals (same-day turnover) do not overlap.
func (g *Guest) Overlaps(checkIn, checkOut types.DateString) bool {
	return g.CheckIn < checkOut && checkIn < g.CheckOut
}

// IsInHouse reports whether the guest sleeps at the unit on the night of day
func (g *Guest) IsInHouse(day types.DateString) bool {
	return g.CheckIn <= day && day < g.CheckOut
}

// BedCount returns the numeric bed count truncated toward zero,
// or 0 when Bed is not a non-negative finite number ("2.0" counts as 2, "1.5" as 1)
func (g *Guest) BedCount() int {
	f, err := strconv.ParseFloat(strings.TrimSpace(g.Bed), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(f)
}

// DisplayName returns the first listed name followed by the number of companions
func (g *Guest) DisplayName() string {
	parts := strings.Split(g.Name, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}

	switch len(names) {
	case 0:
		return strings.TrimSpace(g.Name)
	case 1:
		return names[0]
	case 2:
		return fmt.Sprintf("%s (+1 hóspede)", names[0])
	default:
		return fmt.Sprintf("%s (+%d hóspedes)", names[0], len(names)-1)
	}
}

// GuestFilter selects stays from storage. Nil fields are not applied
type GuestFilter struct {
	UnitID            *string
	Document          *string
	Status            *GuestStatus
	AccommodationType *AccommodationType
	PaymentStatus     *PaymentStatus
	CheckInFrom       *types.DateString // inclusive
	CheckInTo         *types.DateString // inclusive
	Search            string            // case-insensitive substring over name, document, phone, unit, bed, notes
}

// GuestPatch is a partial update of a stay. Nil fields are left unchanged
type GuestPatch struct {
	UnitID            *string
	Bed               *string
	Name              *string
	Document          *string
	Phone             *string
	CheckIn           *types.DateString
	CheckOut          *types.DateString
	Price             *float64
	AccommodationType *AccommodationType
	BedType           *BedType
	Status            *GuestStatus
	PaymentMethod     *PaymentMethod
	PaymentStatus     *PaymentStatus
	Notes             *string
	CheckoutReleased  *bool
}

// IsEmpty returns true if the patch changes nothing
func (p GuestPatch) IsEmpty() bool {
	return p == GuestPatch{}
}

// Apply returns a copy of g with the patch applied
func (p GuestPatch) Apply(g Guest) Guest {
	if p.UnitID != nil {
		g.UnitID = *p.UnitID
	}
	if p.Bed != nil {
		g.Bed = *p.Bed
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Document != nil {
		g.Document = *p.Document
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.CheckIn != nil {
		g.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		g.CheckOut = *p.CheckOut
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	if p.AccommodationType != nil {
		g.AccommodationType = *p.AccommodationType
	}
	if p.BedType != nil {
		g.BedType = *p.BedType
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		g.PaymentMethod = *p.PaymentMethod
	}
	if p.PaymentStatus != nil {
		g.PaymentStatus = *p.PaymentStatus
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
	if p.CheckoutReleased != nil {
		g.CheckoutReleased = *p.CheckoutReleased
	}
	return g
}
