package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
)

// FieldError описание ошибки конкретного поля
type FieldError struct {
	Field string
	Tag   string
}

// Errors набор ошибок валидации
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s(%s)", fe.Field, fe.Tag))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Fields возвращает имена полей с ошибками в алфавитном порядке
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	sort.Strings(fields)
	return fields
}

// Has возвращает true, если среди ошибок есть поле с указанным тегом
func (e Errors) Has(field, tag string) bool {
	for _, fe := range e {
		if fe.Field == field && fe.Tag == tag {
			return true
		}
	}
	return false
}

// Validator обёртка над go-playground/validator с правилами ресепшена
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с тегами cpf, phone_br и date
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имя поля берётся из json тега
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool {
		return IsCPF(fl.Field().String())
	})
	mustRegister(v, "phone_br", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		return types.DateString(fl.Field().String()).Validate() == nil
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct валидирует структуру. Возвращает Errors или nil
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	result := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return result
}

// IsCPF проверяет формат CPF XXX.XXX.XXX-XX
func IsCPF(s string) bool {
	return cpfPattern.MatchString(s)
}

// IsPhone проверяет формат телефона (XX) XXXXX-XXXX
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}
