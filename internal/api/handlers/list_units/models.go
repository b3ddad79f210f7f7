package list_units

import "github.com/m04kA/SMC-FrontDeskService/internal/domain"

// UnitResponse номер или апартамент отеля
type UnitResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// UnitListResponse список номеров
type UnitListResponse struct {
	Units []UnitResponse `json:"units"`
	Total int            `json:"total"`
}

// FromDomainUnits конвертирует список номеров в DTO
func FromDomainUnits(units []domain.Unit) *UnitListResponse {
	result := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		result = append(result, UnitResponse{ID: u.ID, Kind: string(u.Kind)})
	}
	return &UnitListResponse{Units: result, Total: len(result)}
}
