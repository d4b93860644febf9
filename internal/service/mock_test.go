package service

import (
	"context"
	"fmt"

	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
)

// mockCreditosAPI implements upstream.CreditosAPI with overridable funcs.
// Unset funcs return empty results.
type mockCreditosAPI struct {
	getAllFunc      func(ctx context.Context) ([]models.Credito, error)
	getResumenFunc  func(ctx context.Context) ([]models.ResumenImporte, error)
	getByIDFunc     func(ctx context.Context, id int) (*models.Credito, error)
	insertFunc      func(ctx context.Context, credito models.Credito, auditoria models.Auditoria) error
	updateFunc      func(ctx context.Context, legajo int, credito models.Credito, auditoria models.Auditoria) error
	bajaFunc        func(ctx context.Context, id int, auditoria models.Auditoria) error
	rehabilitarFunc func(ctx context.Context, id int, auditoria models.Auditoria) error
	badecFunc       func(ctx context.Context, cuit string) ([]models.BadecData, error)
	deudaFunc       func(ctx context.Context, idCredito int) ([]models.Deuda, error)
	ctasctesFunc    func(ctx context.Context, idCredito int) ([]models.CtaCte, error)

	bajaCalls        int
	rehabilitarCalls int
	insertCalls      int
}

func (m *mockCreditosAPI) GetAllCreditos(ctx context.Context) ([]models.Credito, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCreditosAPI) GetCreditosPaginado(ctx context.Context, buscarPor string, pagina, registrosPorPagina int) (*upstream.PaginaCreditos, error) {
	return &upstream.PaginaCreditos{}, nil
}

func (m *mockCreditosAPI) GetCreditoByID(ctx context.Context, id int) (*models.Credito, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("credito %d no encontrado", id)
}

func (m *mockCreditosAPI) InsertCredito(ctx context.Context, credito models.Credito, auditoria models.Auditoria) error {
	m.insertCalls++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, credito, auditoria)
	}
	return nil
}

func (m *mockCreditosAPI) UpdateCredito(ctx context.Context, legajo int, credito models.Credito, auditoria models.Auditoria) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, legajo, credito, auditoria)
	}
	return nil
}

func (m *mockCreditosAPI) BajaCredito(ctx context.Context, id int, auditoria models.Auditoria) error {
	m.bajaCalls++
	if m.bajaFunc != nil {
		return m.bajaFunc(ctx, id, auditoria)
	}
	return nil
}

func (m *mockCreditosAPI) RehabilitarCredito(ctx context.Context, id int, auditoria models.Auditoria) error {
	m.rehabilitarCalls++
	if m.rehabilitarFunc != nil {
		return m.rehabilitarFunc(ctx, id, auditoria)
	}
	return nil
}

func (m *mockCreditosAPI) GetResumenImportes(ctx context.Context) ([]models.ResumenImporte, error) {
	if m.getResumenFunc != nil {
		return m.getResumenFunc(ctx)
	}
	return nil, nil
}

func (m *mockCreditosAPI) GetListDeudaCredito(ctx context.Context, idCredito int) ([]models.Deuda, error) {
	if m.deudaFunc != nil {
		return m.deudaFunc(ctx, idCredito)
	}
	return nil, nil
}

func (m *mockCreditosAPI) GetListCtasCtes(ctx context.Context, idCredito int) ([]models.CtaCte, error) {
	if m.ctasctesFunc != nil {
		return m.ctasctesFunc(ctx, idCredito)
	}
	return nil, nil
}

func (m *mockCreditosAPI) GetCategoriasDeuda(ctx context.Context) ([]models.CategoriaDeuda, error) {
	return nil, nil
}

func (m *mockCreditosAPI) GetRubros(ctx context.Context) ([]models.RubroCredito, error) {
	return nil, nil
}

func (m *mockCreditosAPI) GetBadecByCuit(ctx context.Context, cuit string) ([]models.BadecData, error) {
	if m.badecFunc != nil {
		return m.badecFunc(ctx, cuit)
	}
	return nil, nil
}

func (m *mockCreditosAPI) GetValorUva(ctx context.Context) (*models.ValorUva, error) {
	return &models.ValorUva{}, nil
}

func (m *mockCreditosAPI) InsertValorUva(ctx context.Context, valor models.ValorUva, auditoria models.Auditoria) error {
	return nil
}

// mockCedulonesAPI implements upstream.CedulonesAPI with overridable funcs.
type mockCedulonesAPI struct {
	cabeceraFunc func(ctx context.Context, nroCedulon int) (*models.CabeceraCedulon, error)
	detalleFunc  func(ctx context.Context, nroCedulon int) ([]models.DetalleCedulon, error)
	emitirFunc   func(ctx context.Context, req models.CedulonRequest) (int, error)

	emitirCalls int
	ultimoReq   models.CedulonRequest
}

func (m *mockCedulonesAPI) GetCabecera(ctx context.Context, nroCedulon int) (*models.CabeceraCedulon, error) {
	if m.cabeceraFunc != nil {
		return m.cabeceraFunc(ctx, nroCedulon)
	}
	return &models.CabeceraCedulon{NroCedulon: nroCedulon}, nil
}

func (m *mockCedulonesAPI) GetDetalle(ctx context.Context, nroCedulon int) ([]models.DetalleCedulon, error) {
	if m.detalleFunc != nil {
		return m.detalleFunc(ctx, nroCedulon)
	}
	return nil, nil
}

func (m *mockCedulonesAPI) EmitirCedulon(ctx context.Context, req models.CedulonRequest) (int, error) {
	m.emitirCalls++
	m.ultimoReq = req
	if m.emitirFunc != nil {
		return m.emitirFunc(ctx, req)
	}
	return 1001, nil
}
