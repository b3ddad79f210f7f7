package domain

import "github.com/m04kA/SMC-FrontDeskService/pkg/types"

// GuestForm is the desk form shape of a stay. Field rules are expressed as
// validator tags and checked before any write
type GuestForm struct {
	UnitID            string            `json:"unitId" validate:"required"`
	Bed               string            `json:"bed" validate:"required,max=10"`
	Name              string            `json:"name" validate:"required,max=300"`
	Document          string            `json:"document" validate:"omitempty,cpf"`
	Phone             string            `json:"phone" validate:"omitempty,phone_br"`
	CheckIn           types.DateString  `json:"checkIn" validate:"required,date"`
	CheckOut          types.DateString  `json:"checkOut" validate:"required,date"`
	Price             *float64          `json:"price" validate:"required,gte=0"`
	AccommodationType AccommodationType `json:"accommodationType" validate:"required,oneof=room apartment"`
	BedType           BedType           `json:"bedType" validate:"required,oneof=single double double_and_single"`
	Status            GuestStatus       `json:"status" validate:"omitempty,oneof=active completed"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod" validate:"omitempty,oneof=not_informed pix card cash"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus" validate:"omitempty,oneof=paid pending"`
	Notes             string            `json:"notes" validate:"max=2000"`
}

// NewGuestForm builds the form view of an existing stay
func NewGuestForm(g Guest) GuestForm {
	price := g.Price
	return GuestForm{
		UnitID:            g.UnitID,
		Bed:               g.Bed,
		Name:              g.Name,
		Document:          g.Document,
		Phone:             g.Phone,
		CheckIn:           g.CheckIn,
		CheckOut:          g.CheckOut,
		Price:             &price,
		AccommodationType: g.AccommodationType,
		BedType:           g.BedType,
		Status:            g.Status,
		PaymentMethod:     g.PaymentMethod,
		PaymentStatus:     g.PaymentStatus,
		Notes:             g.Notes,
	}
}
