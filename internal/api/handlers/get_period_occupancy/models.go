package get_period_occupancy

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	getPeriodOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_period_occupancy"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(checkIn, checkOut, filter string) *getPeriodOccupancy.Request {
	return &getPeriodOccupancy.Request{
		CheckIn:  types.DateString(checkIn),
		CheckOut: types.DateString(checkOut),
		Filter:   domain.UnitFilter(filter),
	}
}

// UnitPeriodResponse занятость номера за период
type UnitPeriodResponse struct {
	UnitID    string                      `json:"unitId"`
	Kind      string                      `json:"kind"`
	Available bool                        `json:"available"`
	Guest     *guestModels.GuestResponse  `json:"guest,omitempty"`
	Guests    []guestModels.GuestResponse `json:"guests"`
}

// PeriodOccupancyResponse карта доступности за период
type PeriodOccupancyResponse struct {
	CheckIn   string               `json:"checkIn"`
	CheckOut  string               `json:"checkOut"`
	Available int                  `json:"available"`
	Occupied  int                  `json:"occupied"`
	Units     []UnitPeriodResponse `json:"units"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPeriodOccupancy.Response) *PeriodOccupancyResponse {
	units := make([]UnitPeriodResponse, 0, len(resp.Units))
	for _, s := range resp.Units {
		units = append(units, UnitPeriodResponse{
			UnitID:    s.UnitID,
			Kind:      string(s.Kind),
			Available: s.Available(),
			Guest:     guestModels.FromDomainGuest(s.Guest),
			Guests:    guestModels.FromDomainGuestList(s.Guests).Guests,
		})
	}

	return &PeriodOccupancyResponse{
		CheckIn:   resp.CheckIn.String(),
		CheckOut:  resp.CheckOut.String(),
		Available: resp.Available,
		Occupied:  resp.Occupied,
		Units:     units,
	}
}
