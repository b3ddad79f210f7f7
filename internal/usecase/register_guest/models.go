package register_guest

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// Request модель запроса на регистрацию проживания
type Request struct {
	UnitID            string
	Bed               string
	Name              string
	Document          string
	Phone             string
	CheckIn           types.DateString
	CheckOut          types.DateString
	Price             *float64 // nil, если цена не указана
	AccommodationType domain.AccommodationType
	BedType           domain.BedType
	PaymentMethod     domain.PaymentMethod
	PaymentStatus     domain.PaymentStatus
	Notes             string
	CheckoutReleased  bool
}

// Response модель ответа с созданной записью
type Response struct {
	Guest *domain.Guest
}

func (r *Request) form() domain.GuestForm {
	return domain.GuestForm{
		UnitID:            r.UnitID,
		Bed:               r.Bed,
		Name:              r.Name,
		Document:          r.Document,
		Phone:             r.Phone,
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
		Price:             r.Price,
		AccommodationType: r.AccommodationType,
		BedType:           r.BedType,
		Status:            domain.GuestStatusActive,
		PaymentMethod:     r.PaymentMethod,
		PaymentStatus:     r.PaymentStatus,
		Notes:             r.Notes,
	}
}

func (r *Request) toDomain() *domain.Guest {
	var price float64
	if r.Price != nil {
		price = *r.Price
	}
	return &domain.Guest{
		UnitID:            r.UnitID,
		Bed:               r.Bed,
		Name:              r.Name,
		Document:          r.Document,
		Phone:             r.Phone,
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
		Price:             price,
		AccommodationType: r.AccommodationType,
		BedType:           r.BedType,
		Status:            domain.GuestStatusActive,
		PaymentMethod:     r.PaymentMethod,
		PaymentStatus:     r.PaymentStatus,
		Notes:             r.Notes,
		CheckoutReleased:  r.CheckoutReleased,
	}
}
