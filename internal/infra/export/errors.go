package export

import "errors"

var (
	// ErrBuildWorkbook возвращается при ошибке формирования XLSX файла
	ErrBuildWorkbook = errors.New("export: failed to build workbook")
)
