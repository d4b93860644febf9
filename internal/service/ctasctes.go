package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
)

// TamaniosPagina are the page sizes the ledger view offers.
var TamaniosPagina = []int{5, 10, 25, 50}

// CuentaCorriente is one page of a credit's ledger plus totals computed over
// the entire fetched set, independent of the page being shown.
type CuentaCorriente struct {
	Movimientos []models.CtaCte      `json:"movimientos"`
	Totales     models.TotalesCtaCte `json:"totales"`
	Pagina      int                  `json:"pagina"`
	PorPagina   int                  `json:"por_pagina"`
	Cantidad    int                  `json:"cantidad"`
}

// CtasCtesService serves the read-only running-account ledger of a credit.
type CtasCtesService struct {
	api    upstream.CreditosAPI
	logger *zap.Logger
}

// NewCtasCtesService creates a CtasCtesService.
func NewCtasCtesService(api upstream.CreditosAPI, logger *zap.Logger) *CtasCtesService {
	return &CtasCtesService{api: api, logger: logger}
}

// Listar fetches the full ledger for a credit and returns the requested page.
// Pages are 1-based; out-of-range pages come back empty but still carry the
// full-set totals.
func (s *CtasCtesService) Listar(ctx context.Context, idCredito, pagina, porPagina int) (*CuentaCorriente, error) {
	movimientos, err := s.api.GetListCtasCtes(ctx, idCredito)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger: %w", err)
	}

	if pagina < 1 {
		pagina = 1
	}
	if !tamanioValido(porPagina) {
		porPagina = 10
	}

	cc := &CuentaCorriente{
		Totales:   TotalizarCtasCtes(movimientos),
		Pagina:    pagina,
		PorPagina: porPagina,
		Cantidad:  len(movimientos),
	}

	desde := (pagina - 1) * porPagina
	if desde >= len(movimientos) {
		cc.Movimientos = []models.CtaCte{}
		return cc, nil
	}
	hasta := desde + porPagina
	if hasta > len(movimientos) {
		hasta = len(movimientos)
	}
	cc.Movimientos = movimientos[desde:hasta]

	s.logger.Debug("ledger page served",
		zap.Int("id_credito", idCredito),
		zap.Int("pagina", pagina),
		zap.Int("filas", len(cc.Movimientos)))
	return cc, nil
}

// TotalizarCtasCtes sums debit, credit and original amount over every entry.
func TotalizarCtasCtes(movimientos []models.CtaCte) models.TotalesCtaCte {
	var totales models.TotalesCtaCte
	for _, m := range movimientos {
		totales.Debe += m.Debe
		totales.Haber += m.Haber
		totales.MontoOriginal += m.MontoOriginal
	}
	return totales
}

func tamanioValido(n int) bool {
	for _, t := range TamaniosPagina {
		if n == t {
			return true
		}
	}
	return false
}
