// Package cedulon renders the printable payment voucher.
package cedulon

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// Config holds the static strings and assets printed on every voucher.
type Config struct {
	LogoPath    string
	Municipio   string
	Dependencia string
}

// Renderer composes the printable cedulón PDF: logo, barcode, contributor
// block, itemized table and the two tear-off stubs.
type Renderer struct {
	cfg     Config
	logo    []byte
	logoExt extension.Type
	logger  *zap.Logger
}

// NewRenderer creates a Renderer. A missing logo file is tolerated; the
// voucher prints without it.
func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	logo, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		logger.Warn("voucher logo not available", zap.String("path", cfg.LogoPath), zap.Error(err))
		logo = nil
	}
	return &Renderer{cfg: cfg, logo: logo, logoExt: logoExtension(cfg.LogoPath), logger: logger}
}

// logoExtension maps the configured logo file to an image type. png and jpg
// are supported; anything else falls back to png.
func logoExtension(path string) extension.Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return extension.Jpg
	default:
		return extension.Png
	}
}

// Render produces the PDF bytes for a reconciled voucher. The detail table
// breaks across pages as needed; the tear-off stub block is registered as the
// page footer so it stays anchored to the bottom.
func (r *Renderer) Render(ced *models.CedulonImpresion) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithBottomMargin(10).
		Build()

	m := maroto.New(cfg)

	nroCedulon := strconv.Itoa(ced.Cabecera.NroCedulon)

	r.addHeader(m, nroCedulon)
	r.addStubs(m, &ced.Cabecera, nroCedulon)
	r.addContribuyente(m, &ced.Cabecera)
	r.addDetalle(m, ced.Detalles)
	r.addTotal(m, ced.Cabecera.MontoPagar)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate voucher PDF: %w", err)
	}

	r.logger.Info("voucher PDF rendered",
		zap.Int("nro_cedulon", ced.Cabecera.NroCedulon),
		zap.Int("lineas", len(ced.Detalles)))
	return doc.GetBytes(), nil
}

func (r *Renderer) addHeader(m core.Maroto, nroCedulon string) {
	cols := []core.Col{}
	if r.logo != nil {
		cols = append(cols, col.New(2).Add(
			image.NewFromBytes(r.logo, r.logoExt, props.Rect{
				Center:  true,
				Percent: 90,
			}),
		))
	} else {
		cols = append(cols, col.New(2))
	}
	cols = append(cols,
		col.New(6).Add(
			text.New(r.cfg.Municipio, props.Text{
				Size:  13,
				Style: fontstyle.Bold,
				Top:   3,
			}),
			text.New(r.cfg.Dependencia, props.Text{
				Size: 9,
				Top:  9,
			}),
		),
		col.New(4).Add(
			text.New("CEDULÓN DE PAGO", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
				Top:   2,
			}),
			text.New("N° "+nroCedulon, props.Text{
				Size:  11,
				Align: align.Right,
				Top:   8,
			}),
		),
	)
	m.AddRow(18, cols...)

	// Linear barcode of the voucher number, Code128.
	m.AddRow(14,
		col.New(8),
		code.NewBarCol(4, nroCedulon, props.Barcode{
			Center:  true,
			Percent: 90,
		}),
	)

	m.AddRow(2, line.NewCol(12))
}

func (r *Renderer) addContribuyente(m core.Maroto, cab *models.CabeceraCedulon) {
	m.AddRow(8,
		text.NewCol(12, "DATOS DEL CONTRIBUYENTE", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Top:   2,
		}),
	)

	campos := []struct {
		etiqueta string
		valor    string
	}{
		{"Nombre", cab.Nombre},
		{"CUIT", cab.Cuit},
		{"Domicilio", cab.Domicilio},
		{"Legajo", strconv.Itoa(cab.Legajo)},
		{"Vencimiento", formatFecha(cab.Vencimiento)},
		{"Cuotas del crédito", strconv.Itoa(cab.CantCuotas)},
		{"Presupuesto", formatImporte(cab.Presupuesto)},
	}
	for _, campo := range campos {
		m.AddRow(6,
			col.New(3).Add(
				text.New(campo.etiqueta+":", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
				}),
			),
			col.New(9).Add(
				text.New(campo.valor, props.Text{Size: 9}),
			),
		)
	}

	m.AddRow(3)
}

func (r *Renderer) addDetalle(m core.Maroto, detalles []models.DetalleCedulon) {
	m.AddRow(8,
		text.NewCol(2, "Período", detalleHeaderStyle(align.Left)),
		text.NewCol(4, "Concepto", detalleHeaderStyle(align.Left)),
		text.NewCol(2, "Monto Original", detalleHeaderStyle(align.Right)),
		text.NewCol(2, "Recargo", detalleHeaderStyle(align.Right)),
		text.NewCol(2, "Total", detalleHeaderStyle(align.Right)),
	)
	m.AddRow(1, line.NewCol(12))

	// maroto breaks long tables across pages on its own.
	for _, detalle := range detalles {
		m.AddRow(6,
			text.NewCol(2, detalle.Periodo, detalleCellStyle(align.Left)),
			text.NewCol(4, detalle.Concepto, detalleCellStyle(align.Left)),
			text.NewCol(2, formatImporte(detalle.MontoOriginal), detalleCellStyle(align.Right)),
			text.NewCol(2, formatImporte(detalle.Recargo), detalleCellStyle(align.Right)),
			text.NewCol(2, formatImporte(detalle.Total), detalleCellStyle(align.Right)),
		)
	}

	m.AddRow(1, line.NewCol(12))
}

func (r *Renderer) addTotal(m core.Maroto, total float64) {
	m.AddRow(10,
		text.NewCol(10, "TOTAL A PAGAR", props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   2,
		}),
		text.NewCol(2, formatImporte(total), props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   2,
		}),
	)
}

// addStubs registers the two side-by-side tear-off stubs as the page footer,
// so they sit at the bottom of every page including the last content page.
// The contributor stub carries a second barcode for the cashier window.
func (r *Renderer) addStubs(m core.Maroto, cab *models.CabeceraCedulon, nroCedulon string) {
	monto := formatImporte(cab.MontoPagar)
	vencimiento := formatFecha(cab.Vencimiento)

	m.RegisterFooter(
		row.New(2).Add(line.NewCol(12)),
		row.New(6).Add(
			text.NewCol(6, "TALÓN PARA EL CONTRIBUYENTE", stubTitleStyle()),
			text.NewCol(6, "TALÓN PARA LA MUNICIPALIDAD", stubTitleStyle()),
		),
		row.New(5).Add(
			text.NewCol(6, "Cedulón N° "+nroCedulon, stubLineStyle()),
			text.NewCol(6, "Cedulón N° "+nroCedulon, stubLineStyle()),
		),
		row.New(5).Add(
			text.NewCol(6, cab.Nombre+" - CUIT "+cab.Cuit, stubLineStyle()),
			text.NewCol(6, cab.Nombre+" - Legajo "+strconv.Itoa(cab.Legajo), stubLineStyle()),
		),
		row.New(5).Add(
			text.NewCol(6, "Vence: "+vencimiento+"  Total: "+monto, stubLineStyle()),
			text.NewCol(6, "Vence: "+vencimiento+"  Total: "+monto, stubLineStyle()),
		),
		row.New(12).Add(
			code.NewBarCol(6, nroCedulon, props.Barcode{
				Center:  true,
				Percent: 80,
			}),
			col.New(6),
		),
	)
}

func detalleHeaderStyle(a align.Type) props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold, Align: a, Top: 2}
}

func detalleCellStyle(a align.Type) props.Text {
	return props.Text{Size: 8, Align: a, Top: 1}
}

func stubTitleStyle() props.Text {
	return props.Text{Size: 8, Style: fontstyle.Bold, Top: 1}
}

func stubLineStyle() props.Text {
	return props.Text{Size: 7, Top: 1}
}

// formatImporte renders an amount in the local convention: $ 1.234,56.
func formatImporte(monto float64) string {
	entero := fmt.Sprintf("%.2f", math.Abs(monto))
	partes := strings.Split(entero, ".")

	var b strings.Builder
	for i, d := range partes[0] {
		if i > 0 && (len(partes[0])-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(d)
	}

	signo := ""
	if monto < 0 {
		signo = "-"
	}
	return "$ " + signo + b.String() + "," + partes[1]
}

// formatFecha renders an upstream date string as dd/mm/yyyy, passing through
// values it cannot parse.
func formatFecha(valor string) string {
	if valor == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, valor); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return valor
}
