package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
)

// ErrSinSeleccion is returned when a voucher issuance arrives with no
// installments selected. It is an informational condition, not a failure.
var ErrSinSeleccion = fmt.Errorf("debe seleccionar al menos una cuota para generar el cedulón")

// DeudaService lists a credit's open installments and issues payment vouchers
// for a selection of them.
type DeudaService struct {
	creditos  upstream.CreditosAPI
	cedulones upstream.CedulonesAPI
	logger    *zap.Logger
}

// NewDeudaService creates a DeudaService.
func NewDeudaService(creditos upstream.CreditosAPI, cedulones upstream.CedulonesAPI, logger *zap.Logger) *DeudaService {
	return &DeudaService{creditos: creditos, cedulones: cedulones, logger: logger}
}

// ListarDeuda fetches the open installments of a credit. Callers refetch on
// every open so freshly covered installments drop out.
func (s *DeudaService) ListarDeuda(ctx context.Context, idCredito int) ([]models.Deuda, error) {
	return s.creditos.GetListDeudaCredito(ctx, idCredito)
}

// EmitirCedulon issues a voucher for the selected installments and returns
// the assigned voucher number.
//
// The voucher total is the sum of the selected installments' due amounts,
// rounded to 2 decimals. The voucher due date is the latest vencimiento among
// the selected rows; selection order plays no part.
func (s *DeudaService) EmitirCedulon(ctx context.Context, credito *models.Credito, seleccion []models.Deuda, usuario *models.Usuario) (int, error) {
	if len(seleccion) == 0 {
		return 0, ErrSinSeleccion
	}

	total := decimal.Zero
	vencimiento := ""
	lineas := make([]models.DeudaCedulon, 0, len(seleccion))
	for _, deuda := range seleccion {
		total = total.Add(decimal.NewFromFloat(deuda.Debe))
		// ISO date strings order lexicographically.
		if deuda.Vencimiento > vencimiento {
			vencimiento = deuda.Vencimiento
		}
		lineas = append(lineas, models.DeudaCedulon{
			Periodo:        deuda.Periodo,
			MontoOriginal:  deuda.MontoOriginal,
			Debe:           deuda.Debe,
			Vencimiento:    deuda.Vencimiento,
			NroTransaccion: deuda.NroTransaccion,
			CategoriaDeuda: models.CategoriaDeudaCedulon,
		})
	}

	monto, _ := total.Round(2).Float64()
	req := models.CedulonRequest{
		IDCreditoMateriales: credito.IDCreditoMateriales,
		Legajo:              credito.Legajo,
		CuitTitular:         credito.CuitSolicitante,
		Vencimiento:         vencimiento,
		MontoCedulon:        monto,
		ListDeuda:           lineas,
		Auditoria:           models.NewAuditoria(models.ProcesoEmiteCedulon, "", usuario.NombreCompleto),
	}

	nroCedulon, err := s.cedulones.EmitirCedulon(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to issue voucher: %w", err)
	}

	s.logger.Info("voucher issued",
		zap.Int("nro_cedulon", nroCedulon),
		zap.Int("id_credito", credito.IDCreditoMateriales),
		zap.Float64("monto", monto),
		zap.Int("cuotas", len(lineas)))
	return nroCedulon, nil
}
