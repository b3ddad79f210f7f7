package config

// Значения по умолчанию для инвентаря и правила выезда
const (
	DefaultCutoffHour = 11
	DefaultTimezone   = "America/Sao_Paulo"
)

var (
	DefaultRooms      = []string{"01", "02", "03", "04", "05", "06", "07", "08", "10", "16"}
	DefaultApartments = []string{"09", "11", "12", "13", "14", "15", "17", "18", "19", "20", "21", "22", "23", "24"}
)
