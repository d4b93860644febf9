package cedulon

import (
	"fmt"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

func rendererPrueba() *Renderer {
	return NewRenderer(Config{
		LogoPath:    "no-existe.png",
		Municipio:   "MUNICIPALIDAD DE VILLA ALLENDE",
		Dependencia: "CREDITOS DE MATERIALES",
	}, zap.NewNop())
}

func cedulonPrueba(lineas int) *models.CedulonImpresion {
	detalles := make([]models.DetalleCedulon, 0, lineas)
	for i := 0; i < lineas; i++ {
		detalles = append(detalles, models.DetalleCedulon{
			Periodo:        fmt.Sprintf("2026/%02d", i%12+1),
			Concepto:       "CREDITO MATERIALES",
			MontoOriginal:  1400,
			Recargo:        100.50,
			NroTransaccion: 900 + i,
			Total:          1500.50,
		})
	}
	return &models.CedulonImpresion{
		Cabecera: models.CabeceraCedulon{
			NroCedulon:  3045,
			Nombre:      "GOMEZ JUAN",
			Cuit:        "20123456789",
			Domicilio:   "AV SAN MARTIN 120",
			Legajo:      4520,
			Vencimiento: "2026-06-10",
			MontoPagar:  1500.50 * float64(lineas),
			CantCuotas:  24,
			Presupuesto: 850000,
		},
		Detalles: detalles,
	}
}

func TestRender(t *testing.T) {
	pdf, err := rendererPrueba().Render(cedulonPrueba(3))
	require.NoError(t, err)
	require.Greater(t, len(pdf), 1000)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderTablaLargaCruzaPaginas(t *testing.T) {
	// Suficientes líneas para forzar más de una página A4.
	pdf, err := rendererPrueba().Render(cedulonPrueba(120))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	corto, err := rendererPrueba().Render(cedulonPrueba(3))
	require.NoError(t, err)
	assert.Greater(t, len(pdf), len(corto))
}

func TestRenderSinLineas(t *testing.T) {
	pdf, err := rendererPrueba().Render(cedulonPrueba(0))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestNewRendererToleraLogoFaltante(t *testing.T) {
	r := NewRenderer(Config{LogoPath: "no-existe.png"}, zap.NewNop())
	assert.Nil(t, r.logo)

	pdf, err := r.Render(cedulonPrueba(1))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestLogoExtension(t *testing.T) {
	tests := []struct {
		path string
		want extension.Type
	}{
		{"assets/logo.png", extension.Png},
		{"assets/logo.PNG", extension.Png},
		{"assets/logo.jpg", extension.Jpg},
		{"assets/logo.JPEG", extension.Jpg},
		{"assets/logo", extension.Png},
		{"", extension.Png},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logoExtension(tt.path), tt.path)
	}
}

func TestFormatImporte(t *testing.T) {
	tests := []struct {
		monto float64
		want  string
	}{
		{0, "$ 0,00"},
		{1234.56, "$ 1.234,56"},
		{1500.5, "$ 1.500,50"},
		{1000000, "$ 1.000.000,00"},
		{-250.75, "$ -250,75"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatImporte(tt.monto))
	}
}

func TestFormatFecha(t *testing.T) {
	tests := []struct {
		valor string
		want  string
	}{
		{"2026-06-10", "10/06/2026"},
		{"2026-06-10T00:00:00", "10/06/2026"},
		{"2026-06-10T12:30:00Z", "10/06/2026"},
		{"", "-"},
		{"sin formato", "sin formato"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFecha(tt.valor))
	}
}
