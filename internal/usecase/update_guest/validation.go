package update_guest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

// normalizePatch убирает пробелы по краям текстовых полей патча
func normalizePatch(p *domain.GuestPatch) {
	for _, s := range []*string{p.UnitID, p.Bed, p.Name, p.Document, p.Phone} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

// validateMerged проверяет запись целиком после применения патча
func validateMerged(v Validator, inventory UnitInventory, merged domain.Guest) error {
	if err := validateForm(v, domain.NewGuestForm(merged)); err != nil {
		return err
	}

	if !inventory.Contains(merged.UnitID) {
		return fmt.Errorf("%w: unit=%s", ErrUnknownUnit, merged.UnitID)
	}

	if !merged.CheckIn.IsBefore(merged.CheckOut) {
		return ErrInvalidRange
	}

	return nil
}

func validateForm(v Validator, form domain.GuestForm) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, fe := range verrs {
		if fe.Tag != "cpf" && fe.Tag != "phone_br" {
			return fmt.Errorf("%w: %w", ErrInvalidInput, verrs)
		}
	}
	if verrs.Has("document", "cpf") {
		return ErrInvalidDocument
	}
	return ErrInvalidPhone
}

