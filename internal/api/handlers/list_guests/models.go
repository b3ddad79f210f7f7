package list_guests

import (
	"net/url"

	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые и отсутствующие фильтры не применяются
func ToServiceRequest(query url.Values) *models.ListGuestsRequest {
	return &models.ListGuestsRequest{
		Status:            optional(query, "status"),
		AccommodationType: optional(query, "accommodationType"),
		PaymentStatus:     optional(query, "paymentStatus"),
		Search:            query.Get("search"),
		Sort:              query.Get("sort"),
	}
}

func optional(query url.Values, key string) *string {
	v := query.Get(key)
	if v == "" || v == "all" {
		return nil
	}
	return &v
}
