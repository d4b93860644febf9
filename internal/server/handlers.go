package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/auth"
	"github.com/sistemasvillaallende/Creditos/internal/cedulon"
	"github.com/sistemasvillaallende/Creditos/internal/export"
	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/service"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	creditos *service.CreditosService
	deuda    *service.DeudaService
	cedulon  *service.CedulonService
	ctasctes *service.CtasCtesService
	exporter *export.Exporter
	renderer *cedulon.Renderer
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	creditos *service.CreditosService,
	deuda *service.DeudaService,
	cedulonSvc *service.CedulonService,
	ctasctes *service.CtasCtesService,
	exporter *export.Exporter,
	renderer *cedulon.Renderer,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		creditos: creditos,
		deuda:    deuda,
		cedulon:  cedulonSvc,
		ctasctes: ctasctes,
		exporter: exporter,
		renderer: renderer,
		logger:   logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Campos  map[string]string `json:"campos,omitempty"`
}

// motivoRequest carries the operator-supplied justification of a status
// toggle.
type motivoRequest struct {
	Motivo string `json:"motivo"`
}

// Health handles GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "creditos-materiales",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Usuario handles GET /api/usuario
func (h *Handlers) Usuario(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: auth.UsuarioActual(c)})
}

// ListarCreditos handles GET /api/creditos. It reloads the merged list and
// applies the requested filters.
func (h *Handlers) ListarCreditos(c *gin.Context) {
	todos, err := h.creditos.LoadAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	buscar := c.Query("buscar")
	soloVencidos := c.Query("soloVencidos") == "true"
	filtrados := service.ApplyFilters(todos, buscar, soloVencidos)

	c.JSON(http.StatusOK, Response{Success: true, Data: filtrados})
}

// BuscarPaginado handles GET /api/creditos/paginado
func (h *Handlers) BuscarPaginado(c *gin.Context) {
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	registros, _ := strconv.Atoi(c.DefaultQuery("registros_por_pagina", "10"))

	page, err := h.creditos.BuscarPaginado(c.Request.Context(), c.Query("buscarPor"), pagina, registros)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: page})
}

// GetCredito handles GET /api/creditos/:id
func (h *Handlers) GetCredito(c *gin.Context) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}
	credito, err := h.creditos.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: credito})
}

// NuevoCredito handles POST /api/creditos
func (h *Handlers) NuevoCredito(c *gin.Context) {
	var credito models.Credito
	if err := c.ShouldBindJSON(&credito); err != nil {
		h.badRequest(c, "cuerpo de solicitud inválido")
		return
	}
	if err := h.creditos.Nuevo(c.Request.Context(), credito, auth.UsuarioActual(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Message: "crédito creado"})
}

// EditarCredito handles PUT /api/creditos/:id
func (h *Handlers) EditarCredito(c *gin.Context) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}
	var credito models.Credito
	if err := c.ShouldBindJSON(&credito); err != nil {
		h.badRequest(c, "cuerpo de solicitud inválido")
		return
	}
	credito.IDCreditoMateriales = id

	if err := h.creditos.Editar(c.Request.Context(), credito, auth.UsuarioActual(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "crédito actualizado"})
}

// BajaCredito handles PUT /api/creditos/:id/baja
func (h *Handlers) BajaCredito(c *gin.Context) {
	h.toggleEstado(c, h.creditos.Baja, "crédito dado de baja")
}

// RehabilitarCredito handles PUT /api/creditos/:id/rehabilitar
func (h *Handlers) RehabilitarCredito(c *gin.Context) {
	h.toggleEstado(c, h.creditos.Rehabilitar, "crédito rehabilitado")
}

func (h *Handlers) toggleEstado(
	c *gin.Context,
	accion func(ctx context.Context, id int, motivo string, usuario *models.Usuario) error,
	mensaje string,
) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}
	var req motivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "cuerpo de solicitud inválido")
		return
	}
	if err := accion(c.Request.Context(), id, req.Motivo, auth.UsuarioActual(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: mensaje})
}

// ListarDeuda handles GET /api/creditos/:id/deuda
func (h *Handlers) ListarDeuda(c *gin.Context) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}
	deudas, err := h.deuda.ListarDeuda(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: deudas})
}

// EmitirCedulon handles POST /api/creditos/:id/cedulon
func (h *Handlers) EmitirCedulon(c *gin.Context) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}

	var req struct {
		Deudas []models.Deuda `json:"deudas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "cuerpo de solicitud inválido")
		return
	}

	credito, err := h.creditos.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	nroCedulon, err := h.deuda.EmitirCedulon(c.Request.Context(), credito, req.Deudas, auth.UsuarioActual(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Data: models.CedulonResponse{NroCedulon: nroCedulon}})
}

// CuentaCorriente handles GET /api/creditos/:id/ctasctes
func (h *Handlers) CuentaCorriente(c *gin.Context) {
	id, ok := h.paramInt(c, "id")
	if !ok {
		return
	}
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	porPagina, _ := strconv.Atoi(c.DefaultQuery("por_pagina", "10"))

	cc, err := h.ctasctes.Listar(c.Request.Context(), id, pagina, porPagina)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: cc})
}

// GetCedulon handles GET /api/cedulones/:nro
func (h *Handlers) GetCedulon(c *gin.Context) {
	nro, ok := h.paramInt(c, "nro")
	if !ok {
		return
	}
	ced, err := h.cedulon.Obtener(c.Request.Context(), nro)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: ced})
}

// GetCedulonPDF handles GET /api/cedulones/:nro/pdf
func (h *Handlers) GetCedulonPDF(c *gin.Context) {
	nro, ok := h.paramInt(c, "nro")
	if !ok {
		return
	}
	ced, err := h.cedulon.Obtener(c.Request.Context(), nro)
	if err != nil {
		h.fail(c, err)
		return
	}
	pdf, err := h.renderer.Render(ced)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cedulon-%d.pdf", nro))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportarCreditos handles GET /api/creditos/export. It exports the last
// loaded list, applying the same filters as the listing, so the file matches
// what the operator sees without refetching. The list is loaded on demand
// when nothing has been loaded yet.
func (h *Handlers) ExportarCreditos(c *gin.Context) {
	todos := h.creditos.Snapshot()
	if len(todos) == 0 {
		var err error
		todos, err = h.creditos.LoadAll(c.Request.Context())
		if err != nil {
			h.fail(c, err)
			return
		}
	}

	buscar := c.Query("buscar")
	soloVencidos := c.Query("soloVencidos") == "true"
	filtrados := service.ApplyFilters(todos, buscar, soloVencidos)

	libro, err := h.exporter.Workbook(filtrados)
	if err != nil {
		if errors.Is(err, export.ErrSinFilas) {
			c.JSON(http.StatusOK, Response{Success: true, Message: err.Error()})
			return
		}
		h.fail(c, err)
		return
	}

	nombre := export.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nombre))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := libro.Write(c.Writer); err != nil {
		h.logger.Error("failed to stream workbook", zap.Error(err))
	}
}

// BuscarBadec handles GET /api/badec
func (h *Handlers) BuscarBadec(c *gin.Context) {
	cuit := c.Query("cuit")
	if len(cuit) < service.MinLargoCuit {
		h.badRequest(c, fmt.Sprintf("ingrese al menos %d caracteres del CUIT", service.MinLargoCuit))
		return
	}
	candidatos, err := h.creditos.BuscarBadec(c.Request.Context(), cuit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: candidatos})
}

// Categorias handles GET /api/categorias
func (h *Handlers) Categorias(c *gin.Context) {
	categorias, err := h.creditos.Categorias(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: categorias})
}

// Rubros handles GET /api/rubros
func (h *Handlers) Rubros(c *gin.Context) {
	rubros, err := h.creditos.Rubros(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: rubros})
}

// ValorUva handles GET /api/uva
func (h *Handlers) ValorUva(c *gin.Context) {
	valor, err := h.creditos.ValorUva(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: valor})
}

// NuevoValorUva handles POST /api/uva
func (h *Handlers) NuevoValorUva(c *gin.Context) {
	var valor models.ValorUva
	if err := c.ShouldBindJSON(&valor); err != nil {
		h.badRequest(c, "cuerpo de solicitud inválido")
		return
	}
	if err := h.creditos.NuevoValorUva(c.Request.Context(), valor, auth.UsuarioActual(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Message: "valor UVA registrado"})
}

func (h *Handlers) paramInt(c *gin.Context, nombre string) (int, bool) {
	v, err := strconv.Atoi(c.Param(nombre))
	if err != nil || v <= 0 {
		h.badRequest(c, fmt.Sprintf("parámetro %s inválido", nombre))
		return 0, false
	}
	return v, true
}

func (h *Handlers) badRequest(c *gin.Context, mensaje string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: mensaje})
}

// fail maps service errors onto the response taxonomy: validation failures
// are 400 with per-field messages, empty selections are 400, everything else
// is an upstream failure surfaced as 502.
func (h *Handlers) fail(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "validación fallida",
			Campos:  vErr.Campos,
		})
	case errors.Is(err, service.ErrMotivoRequerido), errors.Is(err, service.ErrSinSeleccion):
		h.badRequest(c, err.Error())
	default:
		h.logger.Error("upstream call failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, Response{Success: false, Error: err.Error()})
	}
}
