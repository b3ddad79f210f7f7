package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// Service проверки, выполняемые перед записью: пересечение проживаний и уникальность CPF
// Внутри транзакции репозиторий блокирует прочитанные строки номера
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// IsAvailable проверяет, свободен ли номер на полуинтервал [checkIn, checkOut)
// Запись excludeID (редактируемая) не учитывается. Касание границ допустимо
func (s *Service) IsAvailable(ctx context.Context, unitID string, checkIn, checkOut types.DateString, excludeID string) (bool, error) {
	if unitID == "" {
		return false, fmt.Errorf("%w: unitID is required", ErrInvalidInput)
	}
	if err := checkIn.Validate(); err != nil {
		return false, fmt.Errorf("%w: checkIn: %v", ErrInvalidInput, err)
	}
	if err := checkOut.Validate(); err != nil {
		return false, fmt.Errorf("%w: checkOut: %v", ErrInvalidInput, err)
	}
	if !checkIn.IsBefore(checkOut) {
		return false, ErrInvalidRange
	}

	guests, err := s.guestRepo.List(ctx, domain.GuestFilter{
		UnitID: ptr.Ptr(unitID),
		Status: ptr.Ptr(domain.GuestStatusActive),
	})
	if err != nil {
		s.logger.Error("IsAvailable: repository error for unit=%s: %v", unitID, err)
		return false, fmt.Errorf("%w: IsAvailable - repository error: %v", ErrInternal, err)
	}

	if conflict := FindConflict(guests, unitID, checkIn, checkOut, excludeID); conflict != nil {
		s.logger.Info("IsAvailable: unit=%s [%s, %s) conflicts with guest id=%s [%s, %s)",
			unitID, checkIn, checkOut, conflict.ID, conflict.CheckIn, conflict.CheckOut)
		return false, nil
	}

	return true, nil
}

// IsDocumentTaken проверяет, привязан ли CPF к другому активному проживанию
func (s *Service) IsDocumentTaken(ctx context.Context, document string, excludeID string) (bool, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return false, nil
	}

	guests, err := s.guestRepo.List(ctx, domain.GuestFilter{
		Document: ptr.Ptr(document),
		Status:   ptr.Ptr(domain.GuestStatusActive),
	})
	if err != nil {
		s.logger.Error("IsDocumentTaken: repository error: %v", err)
		return false, fmt.Errorf("%w: IsDocumentTaken - repository error: %v", ErrInternal, err)
	}

	for _, g := range guests {
		if g.ID != excludeID && g.IsActive() && g.Document == document {
			return true, nil
		}
	}

	return false, nil
}

// FindConflict возвращает первое активное проживание в номере, строго пересекающее [checkIn, checkOut)
func FindConflict(guests []*domain.Guest, unitID string, checkIn, checkOut types.DateString, excludeID string) *domain.Guest {
	for _, g := range guests {
		if g.ID == excludeID || g.UnitID != unitID || !g.IsActive() {
			continue
		}
		if g.Overlaps(checkIn, checkOut) {
			return g
		}
	}
	return nil
}
