package get_daily_occupancy

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	getDailyOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_daily_occupancy"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(date, filter string) *getDailyOccupancy.Request {
	return &getDailyOccupancy.Request{
		Date:   types.DateString(date),
		Filter: domain.UnitFilter(filter),
	}
}

// UnitStateResponse состояние номера на дату
type UnitStateResponse struct {
	UnitID        string                     `json:"unitId"`
	Kind          string                     `json:"kind"`
	Status        string                     `json:"status"`
	Guest         *guestModels.GuestResponse `json:"guest,omitempty"`
	OutgoingGuest *guestModels.GuestResponse `json:"outgoingGuest,omitempty"`
	IncomingGuest *guestModels.GuestResponse `json:"incomingGuest,omitempty"`
	CheckingIn    bool                       `json:"checkingIn"`
}

// SummaryResponse количество номеров по состояниям
type SummaryResponse struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Occupied   int `json:"occupied"`
	Checkout   int `json:"checkout"`
	Turnaround int `json:"turnaround"`
}

// OccupancyResponse карта занятости на дату
type OccupancyResponse struct {
	Date       string                      `json:"date"`
	PastCutoff bool                        `json:"pastCutoff"`
	Summary    SummaryResponse             `json:"summary"`
	Units      []UnitStateResponse         `json:"units"`
	CheckIns   []guestModels.GuestResponse `json:"checkIns"`
	CheckOuts  []guestModels.GuestResponse `json:"checkOuts"`
	InHouse    []guestModels.GuestResponse `json:"inHouse"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDailyOccupancy.Response) *OccupancyResponse {
	units := make([]UnitStateResponse, 0, len(resp.Units))
	for _, s := range resp.Units {
		units = append(units, UnitStateResponse{
			UnitID:        s.UnitID,
			Kind:          string(s.Kind),
			Status:        string(s.Status),
			Guest:         fromGuest(s.Guest),
			OutgoingGuest: fromGuest(s.OutgoingGuest),
			IncomingGuest: fromGuest(s.IncomingGuest),
			CheckingIn:    s.CheckingIn,
		})
	}

	return &OccupancyResponse{
		Date:       resp.Date.String(),
		PastCutoff: resp.PastCutoff,
		Summary: SummaryResponse{
			Total:      resp.Summary.Total,
			Available:  resp.Summary.Available,
			Occupied:   resp.Summary.Occupied,
			Checkout:   resp.Summary.Checkout,
			Turnaround: resp.Summary.Turnaround,
		},
		Units:     units,
		CheckIns:  guestModels.FromDomainGuestList(resp.CheckIns).Guests,
		CheckOuts: guestModels.FromDomainGuestList(resp.CheckOuts).Guests,
		InHouse:   guestModels.FromDomainGuestList(resp.InHouse).Guests,
	}
}

func fromGuest(g *domain.Guest) *guestModels.GuestResponse {
	if g == nil {
		return nil
	}
	return guestModels.FromDomainGuest(g)
}
