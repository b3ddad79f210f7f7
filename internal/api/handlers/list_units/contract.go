package list_units

import "github.com/m04kA/SMC-FrontDeskService/internal/domain"

type UnitInventory interface {
	Units(filter domain.UnitFilter) []domain.Unit
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
