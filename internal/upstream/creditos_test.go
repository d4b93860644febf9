package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

func TestGetAllCreditos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/CM_Credito_materiales/GetAllCreditos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_credito_materiales":1,"legajo":4520,"nombre":"GOMEZ JUAN"}]`))
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	creditos, err := client.GetAllCreditos(context.Background())
	require.NoError(t, err)
	require.Len(t, creditos, 1)
	assert.Equal(t, 4520, creditos[0].Legajo)
	assert.Equal(t, "GOMEZ JUAN", creditos[0].Nombre)
}

func TestGetCreditosPaginado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/CM_Credito_materiales/GetCreditoMPaginado", r.URL.Path)
		assert.Equal(t, "gomez", r.URL.Query().Get("buscarPor"))
		assert.Equal(t, "2", r.URL.Query().Get("pagina"))
		assert.Equal(t, "10", r.URL.Query().Get("registros_por_pagina"))

		w.Write([]byte(`{"resultado":[{"legajo":4520}],"cantidad_total":13}`))
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	page, err := client.GetCreditosPaginado(context.Background(), "gomez", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 13, page.CantidadTotal)
	require.Len(t, page.Resultado, 1)
	assert.Equal(t, 4520, page.Resultado[0].Legajo)
}

func TestInsertCreditoEnvuelveLaAuditoria(t *testing.T) {
	var recibido map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/CM_Credito_materiales/InsertNuevoCredito", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	credito := models.Credito{Legajo: 4520, CuitSolicitante: "20123456789"}
	auditoria := models.NewAuditoria(models.ProcesoAltaCredito, "", "OPERADOR PRUEBA")

	err := client.InsertCredito(context.Background(), credito, auditoria)
	require.NoError(t, err)
	assert.Contains(t, recibido, "creditoMateriales")
	assert.Contains(t, recibido, "auditoria")
}

func TestBajaCreditoPasaIDPorQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/CM_Credito_materiales/BajaCredito", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("id_credito_materiales"))

		var auditoria models.Auditoria
		require.NoError(t, json.NewDecoder(r.Body).Decode(&auditoria))
		assert.Equal(t, models.ProcesoBajaCredito, auditoria.Proceso)
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	auditoria := models.NewAuditoria(models.ProcesoBajaCredito, "Obra finalizada", "OPERADOR PRUEBA")
	err := client.BajaCredito(context.Background(), 7, auditoria)
	require.NoError(t, err)
}

func TestGetListDeudaCreditoDecodificaElTagConErrata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/CM_Ctasctes/getListDeudaCredito", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("id_credito_materiales"))

		w.Write([]byte(`[{"periodo":"2026/04","debe":1500.50,"nroTtransaccion":901}]`))
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	deudas, err := client.GetListDeudaCredito(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, deudas, 1)
	assert.Equal(t, 901, deudas[0].NroTransaccion)
	assert.Equal(t, 1500.50, deudas[0].Debe)
}

func TestClientErrorPorEstadoNo2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "algo salió mal", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Second, zap.NewNop())

	_, err := client.GetAllCreditos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "algo salió mal")
}

func TestClientRespetaElContexto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewCreditosClient(server.URL, time.Minute, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetAllCreditos(ctx)
	assert.Error(t, err)
}
