package handlers

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

// FieldsMessage дополняет сообщение списком полей, не прошедших валидацию
func FieldsMessage(message string, err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return message + ": " + strings.Join(verrs.Fields(), ", ")
	}
	return message
}
