package register_guest

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	registerGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/register_guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// RegisterGuestRequest HTTP request model
type RegisterGuestRequest struct {
	UnitID            string   `json:"unitId"`
	Bed               string   `json:"bed"`
	Name              string   `json:"name"`
	Document          string   `json:"document"`
	Phone             string   `json:"phone"`
	CheckIn           string   `json:"checkIn"`  // "2025-09-10"
	CheckOut          string   `json:"checkOut"` // "2025-09-15"
	Price             *float64 `json:"price"`
	AccommodationType string   `json:"accommodationType"`
	BedType           string   `json:"bedType"`
	PaymentMethod     string   `json:"paymentMethod"`
	PaymentStatus     string   `json:"paymentStatus"`
	Notes             string   `json:"notes"`
	CheckoutReleased  bool     `json:"checkoutReleased"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterGuestRequest) ToUseCaseRequest() *registerGuest.Request {
	return &registerGuest.Request{
		UnitID:            r.UnitID,
		Bed:               r.Bed,
		Name:              r.Name,
		Document:          r.Document,
		Phone:             r.Phone,
		CheckIn:           types.DateString(r.CheckIn),
		CheckOut:          types.DateString(r.CheckOut),
		Price:             r.Price,
		AccommodationType: domain.AccommodationType(r.AccommodationType),
		BedType:           domain.BedType(r.BedType),
		PaymentMethod:     domain.PaymentMethod(r.PaymentMethod),
		PaymentStatus:     domain.PaymentStatus(r.PaymentStatus),
		Notes:             r.Notes,
		CheckoutReleased:  r.CheckoutReleased,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerGuest.Response) *guestModels.GuestResponse {
	return guestModels.FromDomainGuest(resp.Guest)
}
