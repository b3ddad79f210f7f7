package update_guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestRepo "github.com/m04kA/SMC-FrontDeskService/internal/infra/storage/guest"
)

const (
	conflictDocument = "document"
	conflictUnit     = "unit"
)

// UseCase use case частичного обновления проживания
type UseCase struct {
	guestRepo    GuestRepository
	availability AvailabilityChecker
	inventory    UnitInventory
	validator    Validator
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestRepo GuestRepository,
	availability AvailabilityChecker,
	inventory UnitInventory,
	validator Validator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestRepo:    guestRepo,
		availability: availability,
		inventory:    inventory,
		validator:    validator,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute применяет патч к записи
// Запись проверяется целиком после слияния. Для активной записи повторяются проверки CPF и доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateGuest: id=%s", req.ID)

	// 1. Валидация входных данных
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req.Patch.IsEmpty() {
		uc.logger.Warn("UpdateGuest: empty patch for id=%s", req.ID)
		return nil, ErrEmptyPatch
	}
	normalizePatch(&req.Patch)

	var result *domain.Guest

	// 2. Чтение, проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущую запись с блокировкой
		current, err := uc.guestRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				uc.logger.Warn("UpdateGuest: guest id=%s not found", req.ID)
				return ErrGuestNotFound
			}
			uc.logger.Error("UpdateGuest: failed to get guest id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
		}

		// 2.2. Проверяем запись после слияния
		merged := req.Patch.Apply(*current)
		if err := validateMerged(uc.validator, uc.inventory, merged); err != nil {
			uc.logger.Warn("UpdateGuest: validation failed for id=%s: %v", req.ID, err)
			return err
		}

		// 2.3. Завершенные проживания не участвуют в проверках пересечения
		if merged.IsActive() {
			taken, err := uc.availability.IsDocumentTaken(txCtx, merged.Document, merged.ID)
			if err != nil {
				uc.logger.Error("UpdateGuest: failed to check document: %v", err)
				return fmt.Errorf("%w: failed to check document: %v", ErrInternal, err)
			}
			if taken {
				uc.metrics.IncConflict(conflictDocument)
				uc.logger.Warn("UpdateGuest: document already used by another active stay, id=%s", req.ID)
				return ErrDocumentTaken
			}

			available, err := uc.availability.IsAvailable(txCtx, merged.UnitID, merged.CheckIn, merged.CheckOut, merged.ID)
			if err != nil {
				uc.logger.Error("UpdateGuest: failed to check availability: %v", err)
				return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
			}
			if !available {
				uc.metrics.IncConflict(conflictUnit)
				uc.logger.Warn("UpdateGuest: unit=%s not available for [%s, %s), id=%s",
					merged.UnitID, merged.CheckIn, merged.CheckOut, req.ID)
				return ErrUnitNotAvailable
			}
		}

		// 2.4. Сохраняем изменённые поля
		updated, err := uc.guestRepo.Update(txCtx, req.ID, req.Patch)
		if err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				return ErrGuestNotFound
			}
			uc.logger.Error("UpdateGuest: failed to update guest id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update guest: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateGuest: successfully updated guest id=%s", result.ID)

	return &Response{Guest: result}, nil
}
