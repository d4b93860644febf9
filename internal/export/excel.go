// Package export serializes credit listings into xlsx workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// ErrSinFilas is returned when there is nothing to export. It is surfaced as
// a user-facing notice, not as a failure.
var ErrSinFilas = fmt.Errorf("no hay créditos para exportar")

const (
	sheetName   = "Creditos"
	widthMargin = 2.0
)

// Column order is fixed; it is what operators expect from the listing.
var headers = []string{
	"ID",
	"Legajo",
	"Nombre",
	"CUIT",
	"Domicilio",
	"Garantes",
	"Fecha Alta",
	"Presupuesto",
	"Presupuesto UVA",
	"Cuotas",
	"Valor Cuota UVA",
	"Imp. Pagado",
	"Imp. Adeudado",
	"Imp. Vencido",
	"Cuotas Pagadas",
	"Cuotas Vencidas",
	"Último Pago",
	"Estado",
}

// Exporter writes credit listings to xlsx.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates an Exporter.
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Filename returns the export filename for the given day.
func Filename(fecha time.Time) string {
	return fmt.Sprintf("creditos_%s.xlsx", fecha.Format("2006-01-02"))
}

// Workbook builds a single-sheet workbook from the given rows (the filtered
// view or the full set). Currency fields are written as raw numbers; summary
// fields of rows without a matching debt summary stay empty, never zero.
// Returns ErrSinFilas when the input is empty.
func (e *Exporter) Workbook(creditos []models.CreditoConResumen) (*excelize.File, error) {
	if len(creditos) == 0 {
		return nil, ErrSinFilas
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	for col, header := range headers {
		celda, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, celda, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	widths := make([]float64, len(headers))
	for col, header := range headers {
		widths[col] = float64(len(header))
	}

	for i, credito := range creditos {
		valores := rowValues(&credito)
		for col, valor := range valores {
			celda, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if valor == nil {
				continue
			}
			if err := f.SetCellValue(sheetName, celda, valor); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
			if w := float64(len(fmt.Sprint(valor))); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col := range headers {
		nombre, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, nombre, nombre, widths[col]+widthMargin); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	e.logger.Info("workbook built", zap.Int("filas", len(creditos)))
	return f, nil
}

// rowValues maps one credit to the fixed column order. nil means an empty
// cell.
func rowValues(c *models.CreditoConResumen) []interface{} {
	estado := "Activo"
	if c.Baja {
		estado = "Dado de baja"
	}

	return []interface{}{
		c.IDCreditoMateriales,
		c.Legajo,
		c.Nombre,
		c.CuitSolicitante,
		c.Domicilio,
		c.Garantes,
		c.FechaAlta,
		c.Presupuesto,
		c.PresupuestoUva,
		c.CantCuotas,
		c.ValorCuotaUva,
		floatOrNil(c.ImpPagado),
		floatOrNil(c.ImpAdeudado),
		floatOrNil(c.ImpVencido),
		intOrNil(c.CuotasPagadas),
		intOrNil(c.CuotasVencidas),
		stringOrNil(c.FechaUltimoPago),
		estado,
	}
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intOrNil(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
