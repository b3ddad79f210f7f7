package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

func TestGuestsWorkbook(t *testing.T) {
	guests := []*domain.Guest{
		{
			UnitID:            "05",
			Bed:               "2",
			Name:              "Ana Souza",
			Document:          "123.456.789-00",
			CheckIn:           "2025-09-10",
			CheckOut:          "2025-09-15",
			Price:             350,
			AccommodationType: domain.AccommodationRoom,
			BedType:           domain.BedDouble,
			Status:            domain.GuestStatusActive,
			PaymentMethod:     domain.PaymentPix,
			PaymentStatus:     domain.PaymentPaid,
		},
		{
			UnitID:            "12",
			Bed:               "1",
			Name:              "Carlos",
			CheckIn:           "2025-09-11",
			CheckOut:          "2025-09-12",
			AccommodationType: domain.AccommodationApartment,
			BedType:           domain.BedSingle,
			Status:            domain.GuestStatusCompleted,
		},
	}

	data, err := GuestsWorkbook(guests)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{guestsSheet}, f.GetSheetList())

	rows, err := f.GetRows(guestsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, GuestsHeader, rows[0])
	assert.Equal(t, "05", rows[1][0])
	assert.Equal(t, "Ana Souza", rows[1][2])
	assert.Equal(t, "2025-09-10", rows[1][5])
	assert.Equal(t, "Quarto", rows[1][8])
	assert.Equal(t, "Pago", rows[1][12])
	assert.Equal(t, "Apartamento", rows[2][8])
	assert.Equal(t, "Finalizado", rows[2][10])
}

func TestGuestsWorkbook_Empty(t *testing.T) {
	data, err := GuestsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(guestsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
