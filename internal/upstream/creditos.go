package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// CreditosAPI is the surface of the main credits backend consumed by the
// services. Implemented by CreditosClient; mocked in tests.
type CreditosAPI interface {
	GetAllCreditos(ctx context.Context) ([]models.Credito, error)
	GetCreditosPaginado(ctx context.Context, buscarPor string, pagina, registrosPorPagina int) (*PaginaCreditos, error)
	GetCreditoByID(ctx context.Context, id int) (*models.Credito, error)
	InsertCredito(ctx context.Context, credito models.Credito, auditoria models.Auditoria) error
	UpdateCredito(ctx context.Context, legajo int, credito models.Credito, auditoria models.Auditoria) error
	BajaCredito(ctx context.Context, id int, auditoria models.Auditoria) error
	RehabilitarCredito(ctx context.Context, id int, auditoria models.Auditoria) error
	GetResumenImportes(ctx context.Context) ([]models.ResumenImporte, error)
	GetListDeudaCredito(ctx context.Context, idCredito int) ([]models.Deuda, error)
	GetListCtasCtes(ctx context.Context, idCredito int) ([]models.CtaCte, error)
	GetCategoriasDeuda(ctx context.Context) ([]models.CategoriaDeuda, error)
	GetRubros(ctx context.Context) ([]models.RubroCredito, error)
	GetBadecByCuit(ctx context.Context, cuit string) ([]models.BadecData, error)
	GetValorUva(ctx context.Context) (*models.ValorUva, error)
	InsertValorUva(ctx context.Context, valor models.ValorUva, auditoria models.Auditoria) error
}

// PaginaCreditos is one page of a paginated credit search.
type PaginaCreditos struct {
	Resultado     []models.Credito `json:"resultado"`
	CantidadTotal int              `json:"cantidad_total"`
}

// CreditosClient talks to the CM_* endpoints of the credits API.
type CreditosClient struct {
	*Client
}

// NewCreditosClient creates a credits API client.
func NewCreditosClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CreditosClient {
	return &CreditosClient{Client: NewClient(baseURL, timeout, logger)}
}

// creditoEnvelope is the body shape shared by every mutating credit call.
type creditoEnvelope struct {
	CreditoMateriales models.Credito   `json:"creditoMateriales"`
	Auditoria         models.Auditoria `json:"auditoria"`
}

// GetAllCreditos fetches the full credit list.
func (c *CreditosClient) GetAllCreditos(ctx context.Context) ([]models.Credito, error) {
	var creditos []models.Credito
	err := c.getJSON(ctx, "CM_Credito_materiales/GetAllCreditos", nil, &creditos)
	return creditos, err
}

// GetCreditosPaginado runs the backend's paginated search by legajo or name.
func (c *CreditosClient) GetCreditosPaginado(ctx context.Context, buscarPor string, pagina, registrosPorPagina int) (*PaginaCreditos, error) {
	q := url.Values{}
	q.Set("buscarPor", buscarPor)
	q.Set("pagina", strconv.Itoa(pagina))
	q.Set("registros_por_pagina", strconv.Itoa(registrosPorPagina))

	var page PaginaCreditos
	if err := c.getJSON(ctx, "CM_Credito_materiales/GetCreditoMPaginado", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCreditoByID fetches one credit.
func (c *CreditosClient) GetCreditoByID(ctx context.Context, id int) (*models.Credito, error) {
	q := url.Values{}
	q.Set("id_credito_materiales", strconv.Itoa(id))

	var credito models.Credito
	if err := c.getJSON(ctx, "CM_Credito_materiales/GetCreditoById", q, &credito); err != nil {
		return nil, err
	}
	return &credito, nil
}

// InsertCredito creates a credit, carrying its audit record.
func (c *CreditosClient) InsertCredito(ctx context.Context, credito models.Credito, auditoria models.Auditoria) error {
	body := creditoEnvelope{CreditoMateriales: credito, Auditoria: auditoria}
	return c.sendJSON(ctx, http.MethodPost, "CM_Credito_materiales/InsertNuevoCredito", nil, body, nil)
}

// UpdateCredito updates a credit, keyed by legajo and credit id.
func (c *CreditosClient) UpdateCredito(ctx context.Context, legajo int, credito models.Credito, auditoria models.Auditoria) error {
	q := url.Values{}
	q.Set("legajo", strconv.Itoa(legajo))
	q.Set("id_credito_materiales", strconv.Itoa(credito.IDCreditoMateriales))

	body := creditoEnvelope{CreditoMateriales: credito, Auditoria: auditoria}
	return c.sendJSON(ctx, http.MethodPut, "CM_Credito_materiales/UpdateCredito", q, body, nil)
}

// BajaCredito soft-deletes a credit. The backend flips the status; nothing is
// ever hard-deleted.
func (c *CreditosClient) BajaCredito(ctx context.Context, id int, auditoria models.Auditoria) error {
	q := url.Values{}
	q.Set("id_credito_materiales", strconv.Itoa(id))
	return c.sendJSON(ctx, http.MethodPut, "CM_Credito_materiales/BajaCredito", q, auditoria, nil)
}

// RehabilitarCredito re-activates a previously deactivated credit.
func (c *CreditosClient) RehabilitarCredito(ctx context.Context, id int, auditoria models.Auditoria) error {
	q := url.Values{}
	q.Set("id_credito_materiales", strconv.Itoa(id))
	return c.sendJSON(ctx, http.MethodPut, "CM_Credito_materiales/RehabilitarCredito", q, auditoria, nil)
}

// GetResumenImportes fetches the per-borrower debt-summary feed.
func (c *CreditosClient) GetResumenImportes(ctx context.Context) ([]models.ResumenImporte, error) {
	var resumenes []models.ResumenImporte
	err := c.getJSON(ctx, "CM_Ctasctes/getListResumenImportes", nil, &resumenes)
	return resumenes, err
}

// GetListDeudaCredito fetches the open installments of a credit.
func (c *CreditosClient) GetListDeudaCredito(ctx context.Context, idCredito int) ([]models.Deuda, error) {
	q := url.Values{}
	q.Set("id_credito_materiales", strconv.Itoa(idCredito))

	var deudas []models.Deuda
	err := c.getJSON(ctx, "CM_Ctasctes/getListDeudaCredito", q, &deudas)
	return deudas, err
}

// GetListCtasCtes fetches the full running-account ledger of a credit.
func (c *CreditosClient) GetListCtasCtes(ctx context.Context, idCredito int) ([]models.CtaCte, error) {
	q := url.Values{}
	q.Set("id_credito_materiales", strconv.Itoa(idCredito))

	var cuentas []models.CtaCte
	err := c.getJSON(ctx, "CM_Ctasctes/getListCtasCtes", q, &cuentas)
	return cuentas, err
}

// GetCategoriasDeuda fetches the debt-category reference list.
func (c *CreditosClient) GetCategoriasDeuda(ctx context.Context) ([]models.CategoriaDeuda, error) {
	var categorias []models.CategoriaDeuda
	err := c.getJSON(ctx, "CM_Categoria_deuda/getListCategoriaDeuda", nil, &categorias)
	return categorias, err
}

// GetRubros fetches the credit-rubro reference list.
func (c *CreditosClient) GetRubros(ctx context.Context) ([]models.RubroCredito, error) {
	var rubros []models.RubroCredito
	err := c.getJSON(ctx, "CM_Rubros/getListRubros", nil, &rubros)
	return rubros, err
}

// GetBadecByCuit runs the partial-match borrower lookup.
func (c *CreditosClient) GetBadecByCuit(ctx context.Context, cuit string) ([]models.BadecData, error) {
	q := url.Values{}
	q.Set("cuit", cuit)

	var candidatos []models.BadecData
	err := c.getJSON(ctx, "Badec/GetBadecByCuit", q, &candidatos)
	return candidatos, err
}

// GetValorUva fetches the current UVA index value.
func (c *CreditosClient) GetValorUva(ctx context.Context) (*models.ValorUva, error) {
	var valor models.ValorUva
	if err := c.getJSON(ctx, "CM_Valores_uva/GetUltimoValorUva", nil, &valor); err != nil {
		return nil, err
	}
	return &valor, nil
}

// InsertValorUva posts a new UVA index value.
func (c *CreditosClient) InsertValorUva(ctx context.Context, valor models.ValorUva, auditoria models.Auditoria) error {
	body := struct {
		ValorUva  models.ValorUva  `json:"valorUva"`
		Auditoria models.Auditoria `json:"auditoria"`
	}{ValorUva: valor, Auditoria: auditoria}
	return c.sendJSON(ctx, http.MethodPost, "CM_Valores_uva/InsertValorUva", nil, body, nil)
}
