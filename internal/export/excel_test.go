package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestWorkbook(t *testing.T) {
	fecha := "2026-05-10"
	creditos := []models.CreditoConResumen{
		{
			Credito: models.Credito{
				IDCreditoMateriales: 1,
				Legajo:              4520,
				Nombre:              "GOMEZ JUAN",
				CuitSolicitante:     "20123456789",
				Domicilio:           "AV SAN MARTIN 120",
				Garantes:            "PEREZ MARIA",
				FechaAlta:           "2025-11-03",
				Presupuesto:         850000,
				CantCuotas:          24,
			},
			ImpPagado:       fptr(1200.50),
			ImpAdeudado:     fptr(3400),
			ImpVencido:      fptr(0),
			CuotasPagadas:   iptr(6),
			CuotasVencidas:  iptr(0),
			FechaUltimoPago: &fecha,
		},
		{
			Credito: models.Credito{
				IDCreditoMateriales: 2,
				Legajo:              7811,
				Nombre:              models.SinNombre,
				Baja:                true,
			},
			// sin resumen: las celdas de resumen quedan vacías
		},
	}

	exporter := NewExporter(zap.NewNop())
	f, err := exporter.Workbook(creditos)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Creditos")
	require.NoError(t, err)
	require.Len(t, rows, 3) // encabezado + 2 filas

	assert.Equal(t, headers, rows[0])

	primera, err := f.GetCellValue("Creditos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", primera)

	pagado, err := f.GetCellValue("Creditos", "L2")
	require.NoError(t, err)
	assert.Equal(t, "1200.5", pagado)

	estado, err := f.GetCellValue("Creditos", "R3")
	require.NoError(t, err)
	assert.Equal(t, "Dado de baja", estado)

	// La fila sin resumen deja las celdas vacías, nunca en cero.
	for _, celda := range []string{"L3", "M3", "N3", "O3", "P3", "Q3"} {
		valor, err := f.GetCellValue("Creditos", celda)
		require.NoError(t, err)
		assert.Empty(t, valor, "celda %s", celda)
	}
}

func TestWorkbookSinFilas(t *testing.T) {
	exporter := NewExporter(zap.NewNop())

	f, err := exporter.Workbook(nil)

	assert.ErrorIs(t, err, ErrSinFilas)
	assert.Nil(t, f)
}

func TestFilename(t *testing.T) {
	fecha := time.Date(2026, time.May, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "creditos_2026-05-10.xlsx", Filename(fecha))
}
