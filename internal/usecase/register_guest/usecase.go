package register_guest

import (
	"context"
	"fmt"
)

const (
	conflictDocument = "document"
	conflictUnit     = "unit"
)

// UseCase use case регистрации проживания
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

// Execute регистрирует проживание
// Проверки CPF и доступности номера выполняются в одной сериализуемой транзакции с записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalize(req)

	uc.logger.Info("RegisterGuest: unit=%s, checkIn=%s, checkOut=%s", req.UnitID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(uc.validator, uc.inventory, req); err != nil {
		uc.logger.Warn("RegisterGuest: validation failed: %v", err)
		return nil, err
	}

	guest := req.toDomain()

	// 2. Проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. CPF не должен принадлежать другому активному проживанию
		taken, err := uc.availability.IsDocumentTaken(txCtx, guest.Document, "")
		if err != nil {
			uc.logger.Error("RegisterGuest: failed to check document: %v", err)
			return fmt.Errorf("%w: failed to check document: %v", ErrInternal, err)
		}
		if taken {
			uc.metrics.IncConflict(conflictDocument)
			uc.logger.Warn("RegisterGuest: document already used by an active stay")
			return ErrDocumentTaken
		}

		// 2.2. Номер должен быть свободен на [checkIn, checkOut)
		available, err := uc.availability.IsAvailable(txCtx, guest.UnitID, guest.CheckIn, guest.CheckOut, "")
		if err != nil {
			uc.logger.Error("RegisterGuest: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if !available {
			uc.metrics.IncConflict(conflictUnit)
			uc.logger.Warn("RegisterGuest: unit=%s not available for [%s, %s)", guest.UnitID, guest.CheckIn, guest.CheckOut)
			return ErrUnitNotAvailable
		}

		// 2.3. Сохраняем запись
		created, err := uc.guestRepo.Create(txCtx, guest)
		if err != nil {
			uc.logger.Error("RegisterGuest: failed to create guest: %v", err)
			return fmt.Errorf("%w: failed to create guest: %v", ErrInternal, err)
		}

		guest = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncGuestRegistered(string(guest.AccommodationType))
	uc.logger.Info("RegisterGuest: successfully created guest id=%s, unit=%s", guest.ID, guest.UnitID)

	return &Response{Guest: guest}, nil
}
