package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
)

// CedulonService fetches and reconciles an issued voucher for display and
// printing.
type CedulonService struct {
	cedulones upstream.CedulonesAPI
	logger    *zap.Logger
}

// NewCedulonService creates a CedulonService.
func NewCedulonService(cedulones upstream.CedulonesAPI, logger *zap.Logger) *CedulonService {
	return &CedulonService{cedulones: cedulones, logger: logger}
}

// Obtener fetches header and detail concurrently and reconciles them: detail
// lines are deduplicated by transaction number (last occurrence wins), each
// line total becomes montoOriginal + recargo, and the header total is
// recomputed as the sum of line totals. The displayed total therefore always
// equals the sum of the displayed lines, whatever the backend returned.
func (s *CedulonService) Obtener(ctx context.Context, nroCedulon int) (*models.CedulonImpresion, error) {
	var (
		wg       sync.WaitGroup
		cabecera *models.CabeceraCedulon
		detalles []models.DetalleCedulon
		errCab   error
		errDet   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cabecera, errCab = s.cedulones.GetCabecera(ctx, nroCedulon)
	}()
	go func() {
		defer wg.Done()
		detalles, errDet = s.cedulones.GetDetalle(ctx, nroCedulon)
	}()
	wg.Wait()

	if errCab != nil {
		return nil, fmt.Errorf("failed to fetch voucher header: %w", errCab)
	}
	if errDet != nil {
		return nil, fmt.Errorf("failed to fetch voucher detail: %w", errDet)
	}

	lineas := ReconciliarDetalles(detalles)

	total := decimal.Zero
	for _, linea := range lineas {
		total = total.Add(decimal.NewFromFloat(linea.Total))
	}
	if recomputado, _ := total.Round(2).Float64(); recomputado != cabecera.MontoPagar {
		s.logger.Debug("voucher total overridden",
			zap.Int("nro_cedulon", nroCedulon),
			zap.Float64("backend", cabecera.MontoPagar),
			zap.Float64("recomputado", recomputado))
		cabecera.MontoPagar = recomputado
	}

	return &models.CedulonImpresion{Cabecera: *cabecera, Detalles: lineas}, nil
}

// ReconciliarDetalles deduplicates voucher lines by transaction number,
// keeping the later occurrence, and computes each line's total as
// montoOriginal + recargo. The relative order of first appearance is kept.
func ReconciliarDetalles(detalles []models.DetalleCedulon) []models.DetalleCedulon {
	orden := make([]int, 0, len(detalles))
	porTransaccion := make(map[int]models.DetalleCedulon, len(detalles))
	for _, detalle := range detalles {
		if _, visto := porTransaccion[detalle.NroTransaccion]; !visto {
			orden = append(orden, detalle.NroTransaccion)
		}
		porTransaccion[detalle.NroTransaccion] = detalle
	}

	lineas := make([]models.DetalleCedulon, 0, len(orden))
	for _, nro := range orden {
		linea := porTransaccion[nro]
		total := decimal.NewFromFloat(linea.MontoOriginal).
			Add(decimal.NewFromFloat(linea.Recargo))
		linea.Total, _ = total.Round(2).Float64()
		lineas = append(lineas, linea)
	}
	return lineas
}
