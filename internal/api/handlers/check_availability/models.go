package check_availability

// AvailabilityResponse результат проверки доступности номера
type AvailabilityResponse struct {
	UnitID    string `json:"unitId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`
}
