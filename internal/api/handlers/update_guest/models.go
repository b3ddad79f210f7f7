package update_guest

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	updateGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/update_guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// UpdateGuestRequest HTTP request model. Отсутствующие поля не меняются
type UpdateGuestRequest struct {
	UnitID            *string  `json:"unitId,omitempty"`
	Bed               *string  `json:"bed,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Document          *string  `json:"document,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	CheckIn           *string  `json:"checkIn,omitempty"`
	CheckOut          *string  `json:"checkOut,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	AccommodationType *string  `json:"accommodationType,omitempty"`
	BedType           *string  `json:"bedType,omitempty"`
	Status            *string  `json:"status,omitempty"`
	PaymentMethod     *string  `json:"paymentMethod,omitempty"`
	PaymentStatus     *string  `json:"paymentStatus,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	CheckoutReleased  *bool    `json:"checkoutReleased,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateGuestRequest) ToUseCaseRequest(id string) *updateGuest.Request {
	return &updateGuest.Request{
		ID: id,
		Patch: domain.GuestPatch{
			UnitID:            r.UnitID,
			Bed:               r.Bed,
			Name:              r.Name,
			Document:          r.Document,
			Phone:             r.Phone,
			CheckIn:           convert[types.DateString](r.CheckIn),
			CheckOut:          convert[types.DateString](r.CheckOut),
			Price:             r.Price,
			AccommodationType: convert[domain.AccommodationType](r.AccommodationType),
			BedType:           convert[domain.BedType](r.BedType),
			Status:            convert[domain.GuestStatus](r.Status),
			PaymentMethod:     convert[domain.PaymentMethod](r.PaymentMethod),
			PaymentStatus:     convert[domain.PaymentStatus](r.PaymentStatus),
			Notes:             r.Notes,
			CheckoutReleased:  r.CheckoutReleased,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateGuest.Response) *guestModels.GuestResponse {
	return guestModels.FromDomainGuest(resp.Guest)
}

func convert[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
