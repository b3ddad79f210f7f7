package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

const guestsSheet = "Hóspedes"

// GuestsHeader заголовки колонок выгрузки
var GuestsHeader = []string{
	"Unidade",
	"Cama",
	"Nome",
	"CPF",
	"Telefone",
	"Entrada",
	"Saída",
	"Valor",
	"Acomodação",
	"Tipo de cama",
	"Status",
	"Pagamento",
	"Status do pagamento",
	"Observação",
}

var (
	accommodationLabels = map[domain.AccommodationType]string{
		domain.AccommodationRoom:      "Quarto",
		domain.AccommodationApartment: "Apartamento",
	}
	bedTypeLabels = map[domain.BedType]string{
		domain.BedSingle:          "Solteiro",
		domain.BedDouble:          "Casal",
		domain.BedDoubleAndSingle: "Casal e solteiro",
	}
	statusLabels = map[domain.GuestStatus]string{
		domain.GuestStatusActive:    "Em andamento",
		domain.GuestStatusCompleted: "Finalizado",
	}
	paymentMethodLabels = map[domain.PaymentMethod]string{
		domain.PaymentNotInformed: "Não informado",
		domain.PaymentPix:         "Pix",
		domain.PaymentCard:        "Cartão",
		domain.PaymentCash:        "Dinheiro",
	}
	paymentStatusLabels = map[domain.PaymentStatus]string{
		domain.PaymentPaid:    "Pago",
		domain.PaymentPending: "Pendente",
	}
)

// GuestsWorkbook формирует XLSX со списком гостей в переданном порядке
func GuestsWorkbook(guests []*domain.Guest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(guestsSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheet: %v", ErrBuildWorkbook, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: delete default sheet: %v", ErrBuildWorkbook, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create header style: %v", ErrBuildWorkbook, err)
	}

	header := make([]interface{}, len(GuestsHeader))
	for i, h := range GuestsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(guestsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: write header: %v", ErrBuildWorkbook, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(GuestsHeader))
	if err != nil {
		return nil, fmt.Errorf("%w: header range: %v", ErrBuildWorkbook, err)
	}
	if err := f.SetCellStyle(guestsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("%w: style header: %v", ErrBuildWorkbook, err)
	}

	for i, g := range guests {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, i+2, err)
		}

		row := []interface{}{
			g.UnitID,
			g.Bed,
			g.Name,
			g.Document,
			g.Phone,
			g.CheckIn.String(),
			g.CheckOut.String(),
			g.Price,
			accommodationLabels[g.AccommodationType],
			bedTypeLabels[g.BedType],
			statusLabels[g.Status],
			paymentMethodLabels[g.PaymentMethod],
			paymentStatusLabels[g.PaymentStatus],
			g.Notes,
		}
		if err := f.SetSheetRow(guestsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: write row %d: %v", ErrBuildWorkbook, i+2, err)
		}
	}

	if err := f.SetColWidth(guestsSheet, "A", lastCol, 16); err != nil {
		return nil, fmt.Errorf("%w: column width: %v", ErrBuildWorkbook, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrBuildWorkbook, err)
	}

	return buf.Bytes(), nil
}
