package models

// Карточки панели, для которых доступен список гостей
const (
	MetricCurrentGuests    = "currentGuests"
	MetricTodayCheckIns    = "todayCheckIns"
	MetricTodayCheckOuts   = "todayCheckOuts"
	MetricUpcomingCheckIns = "upcomingCheckIns"
)

// StatsResponse значения карточек панели на сегодня
type StatsResponse struct {
	Date             string  `json:"date"`
	CurrentGuests    int     `json:"currentGuests"` // сумма кроватей проживающих сегодня
	TodayCheckIns    int     `json:"todayCheckIns"`
	TodayCheckOuts   int     `json:"todayCheckOuts"`
	DailyRevenue     float64 `json:"dailyRevenue"`
	WeeklyRevenue    float64 `json:"weeklyRevenue"`
	UpcomingCheckIns int     `json:"upcomingCheckIns"`
}

// DayCount количество заездов за день месяца
type DayCount struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AccommodationSplit заезды месяца по типу размещения
type AccommodationSplit struct {
	Rooms      int `json:"rooms"`
	Apartments int `json:"apartments"`
}

// ChartsResponse данные графиков текущего месяца
type ChartsResponse struct {
	Month              string             `json:"month"` // "2025-09"
	CheckInsByDay      []DayCount         `json:"checkInsByDay"`
	AccommodationSplit AccommodationSplit `json:"accommodationSplit"`
}
