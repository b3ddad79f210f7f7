package guests

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/internal/infra/export"
	guestRepo "github.com/m04kA/SMC-FrontDeskService/internal/infra/storage/guest"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
)

// Service сервис для работы с записями о проживании
type Service struct {
	guestRepo    GuestRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(
	guestRepo GuestRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		guestRepo:    guestRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает запись о проживании по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.GuestResponse, error) {
	s.logger.Info("GetByID: fetching guest id=%s", id)

	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%s not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// List возвращает записи по фильтрам и текстовому поиску
// По умолчанию сортировка по времени создания (новые первыми), sort=unit сортирует по номеру
func (s *Service) List(ctx context.Context, req *models.ListGuestsRequest) (*models.GuestListResponse, error) {
	guests, err := s.list(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: successfully fetched %d guests", len(guests))
	return models.FromDomainGuestList(guests), nil
}

// Export формирует XLSX с той же выборкой, что и List
func (s *Service) Export(ctx context.Context, req *models.ListGuestsRequest) ([]byte, error) {
	guests, err := s.list(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := export.GuestsWorkbook(guests)
	if err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - workbook error: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d guests (%d bytes)", len(guests), len(data))
	return data, nil
}

func (s *Service) list(ctx context.Context, req *models.ListGuestsRequest) ([]*domain.Guest, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	order, err := req.SortOrder()
	if err != nil {
		s.logger.Warn("List: invalid sort=%q", req.Sort)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching guests, search=%q, sort=%s", filter.Search, order)

	guests, err := s.guestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if order == models.SortUnit {
		// Стабильная сортировка сохраняет порядок по дате создания внутри номера
		sort.SliceStable(guests, func(i, j int) bool {
			return domain.LessUnitID(guests[i].UnitID, guests[j].UnitID)
		})
	}

	return guests, nil
}

// UpdateStatus завершает проживание или возобновляет завершенное
// При возобновлении повторяются проверки CPF и доступности номера
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.GuestResponse, error) {
	s.logger.Info("UpdateStatus: guest id=%s, status=%s", id, status)

	target, err := models.ToDomainGuestStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for guest id=%s", status, id)
		return nil, ErrInvalidStatus
	}

	var result *domain.Guest

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.guestRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				s.logger.Warn("UpdateStatus: guest id=%s not found", id)
				return ErrGuestNotFound
			}
			s.logger.Error("UpdateStatus: repository error for guest id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if current.Status == target {
			result = current
			return nil
		}

		if target == domain.GuestStatusActive {
			if err := s.checkReactivation(txCtx, current); err != nil {
				return err
			}
		}

		updated, err := s.guestRepo.Update(txCtx, id, domain.GuestPatch{Status: ptr.Ptr(target)})
		if err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				return ErrGuestNotFound
			}
			s.logger.Error("UpdateStatus: failed to update guest id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: guest id=%s is now %s", id, result.Status)
	return models.FromDomainGuest(result), nil
}

func (s *Service) checkReactivation(ctx context.Context, g *domain.Guest) error {
	taken, err := s.availability.IsDocumentTaken(ctx, g.Document, g.ID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to check document: %v", err)
		return fmt.Errorf("%w: UpdateStatus - document check: %v", ErrInternal, err)
	}
	if taken {
		s.logger.Warn("UpdateStatus: document of guest id=%s used by another active stay", g.ID)
		return ErrDocumentTaken
	}

	available, err := s.availability.IsAvailable(ctx, g.UnitID, g.CheckIn, g.CheckOut, g.ID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to check availability: %v", err)
		return fmt.Errorf("%w: UpdateStatus - availability check: %v", ErrInternal, err)
	}
	if !available {
		s.logger.Warn("UpdateStatus: unit=%s not available for [%s, %s), guest id=%s",
			g.UnitID, g.CheckIn, g.CheckOut, g.ID)
		return ErrUnitNotAvailable
	}

	return nil
}

// Delete удаляет запись о проживании
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting guest id=%s", id)

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Delete: guest id=%s not found", id)
			return ErrGuestNotFound
		}
		s.logger.Error("Delete: repository error for guest id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted guest id=%s", id)
	return nil
}
