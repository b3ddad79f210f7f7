package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается, если строка не соответствует формату YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid date string format")
)

// DateString календарная дата без времени в формате "YYYY-MM-DD"
// Лексикографическое сравнение строк совпадает с хронологическим
type DateString string

// NewDateString создает DateString из time.Time (берутся год, месяц и день в локации t)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// NewDateStringFromString парсит и нормализует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return NewDateString(t), nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return d == ""
}

func (d DateString) String() string {
	return string(d)
}

// Time возвращает полночь даты в UTC. Для некорректной даты возвращает нулевое время
func (d DateString) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays сдвигает дату на n дней (n может быть отрицательным)
func (d DateString) AddDays(n int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, n))
}

// IsBefore возвращает true, если d раньше other
func (d DateString) IsBefore(other DateString) bool {
	return d < other
}

// IsAfter возвращает true, если d позже other
func (d DateString) IsAfter(other DateString) bool {
	return d > other
}

// Between возвращает true, если from <= d <= to
func (d DateString) Between(from, to DateString) bool {
	return d >= from && d <= to
}

// Value реализует driver.Valuer для записи в колонку DATE
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения колонки DATE
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = NewDateString(v)
	case string:
		parsed, err := parseScanned(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		parsed, err := parseScanned(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
	return nil
}

func parseScanned(s string) (DateString, error) {
	if len(s) >= len(DateLayout) {
		return NewDateStringFromString(s[:len(DateLayout)])
	}
	return NewDateStringFromString(s)
}
