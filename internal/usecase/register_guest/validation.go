package register_guest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

// normalize убирает пробелы по краям текстовых полей формы
func normalize(req *Request) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	req.Bed = strings.TrimSpace(req.Bed)
	req.Name = strings.TrimSpace(req.Name)
	req.Document = strings.TrimSpace(req.Document)
	req.Phone = strings.TrimSpace(req.Phone)
}

// validateRequest проверяет поля формы, принадлежность номера фонду и порядок дат
func validateRequest(v Validator, inventory UnitInventory, req *Request) error {
	form := req.form()

	if err := validateForm(v, form); err != nil {
		return err
	}

	if !inventory.Contains(form.UnitID) {
		return fmt.Errorf("%w: unit=%s", ErrUnknownUnit, form.UnitID)
	}

	if !form.CheckIn.IsBefore(form.CheckOut) {
		return ErrInvalidRange
	}

	return nil
}

// validateForm сначала сообщает об обязательных и перечислимых полях, затем о форматах CPF и телефона
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
