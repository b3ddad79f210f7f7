package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
)

var (
	// ErrInvalidFilter возвращается при некорректном значении фильтра
	ErrInvalidFilter = errors.New("invalid guests filter")

	// ErrInvalidSort возвращается при неизвестном порядке сортировки
	ErrInvalidSort = errors.New("invalid guests sort order")

	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid guest status")
)

// Порядок сортировки списка
const (
	SortCreated = "created"
	SortUnit    = "unit"
)

// Request модели

// ListGuestsRequest запрос на получение списка гостей
type ListGuestsRequest struct {
	Status            *string `json:"status,omitempty"`
	AccommodationType *string `json:"accommodationType,omitempty"`
	PaymentStatus     *string `json:"paymentStatus,omitempty"`
	Search            string  `json:"search,omitempty"`
	Sort              string  `json:"sort,omitempty"` // created (по умолчанию) или unit
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListGuestsRequest) ToDomainFilter() (domain.GuestFilter, error) {
	filter := domain.GuestFilter{
		Search: strings.TrimSpace(r.Search),
	}

	if len([]rune(filter.Search)) > domain.MaxSearchTerm {
		return filter, ErrInvalidFilter
	}

	if r.Status != nil && *r.Status != "" {
		status := domain.GuestStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidFilter
		}
		filter.Status = ptr.Ptr(status)
	}

	if r.AccommodationType != nil && *r.AccommodationType != "" {
		t := domain.AccommodationType(*r.AccommodationType)
		if !t.IsValid() {
			return filter, ErrInvalidFilter
		}
		filter.AccommodationType = ptr.Ptr(t)
	}

	if r.PaymentStatus != nil && *r.PaymentStatus != "" {
		ps := domain.PaymentStatus(*r.PaymentStatus)
		if !ps.IsValid() {
			return filter, ErrInvalidFilter
		}
		filter.PaymentStatus = ptr.Ptr(ps)
	}

	return filter, nil
}

// SortOrder возвращает проверенный порядок сортировки
func (r *ListGuestsRequest) SortOrder() (string, error) {
	switch r.Sort {
	case "", SortCreated:
		return SortCreated, nil
	case SortUnit:
		return SortUnit, nil
	default:
		return "", ErrInvalidSort
	}
}

// Response модели

// GuestResponse ответ с данными проживания
type GuestResponse struct {
	ID                string  `json:"id"`
	UnitID            string  `json:"unitId"`
	Bed               string  `json:"bed"`
	Name              string  `json:"name"`
	DisplayName       string  `json:"displayName"`
	Document          string  `json:"document"`
	Phone             string  `json:"phone"`
	CheckIn           string  `json:"checkIn"`  // "2025-09-10"
	CheckOut          string  `json:"checkOut"` // "2025-09-15"
	Price             float64 `json:"price"`
	AccommodationType string  `json:"accommodationType"`
	BedType           string  `json:"bedType"`
	Status            string  `json:"status"`
	PaymentMethod     string  `json:"paymentMethod"`
	PaymentStatus     string  `json:"paymentStatus"`
	Notes             string  `json:"notes"`
	CheckoutReleased  bool    `json:"checkoutReleased"`
	SchemaVersion     int     `json:"schemaVersion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
}

// Методы конвертации

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	return &GuestResponse{
		ID:                g.ID,
		UnitID:            g.UnitID,
		Bed:               g.Bed,
		Name:              g.Name,
		DisplayName:       g.DisplayName(),
		Document:          g.Document,
		Phone:             g.Phone,
		CheckIn:           g.CheckIn.String(),
		CheckOut:          g.CheckOut.String(),
		Price:             g.Price,
		AccommodationType: string(g.AccommodationType),
		BedType:           string(g.BedType),
		Status:            string(g.Status),
		PaymentMethod:     string(g.PaymentMethod),
		PaymentStatus:     string(g.PaymentStatus),
		Notes:             g.Notes,
		CheckoutReleased:  g.CheckoutReleased,
		SchemaVersion:     g.SchemaVersion,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guests)),
	}

	for _, g := range guests {
		if guestResp := FromDomainGuest(g); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}
	resp.Total = len(resp.Guests)

	return resp
}

// ToDomainGuestStatus конвертирует строку в domain.GuestStatus с валидацией
func ToDomainGuestStatus(status string) (domain.GuestStatus, error) {
	s := domain.GuestStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
