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

func TestGetCabecera(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Credito/getCabeceraPrintCedulonCredito", r.URL.Path)
		assert.Equal(t, "3045", r.URL.Query().Get("nroCedulon"))

		w.Write([]byte(`{"nroCedulon":3045,"nombre":"GOMEZ JUAN","montoPagar":3500.75,"vencimiento":"2026-06-10"}`))
	}))
	defer server.Close()

	client := NewCedulonesClient(server.URL, time.Second, zap.NewNop())

	cabecera, err := client.GetCabecera(context.Background(), 3045)
	require.NoError(t, err)
	assert.Equal(t, 3045, cabecera.NroCedulon)
	assert.Equal(t, "GOMEZ JUAN", cabecera.Nombre)
	assert.Equal(t, 3500.75, cabecera.MontoPagar)
}

func TestGetDetalle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Credito/getDetallePrintCedulonCredito", r.URL.Path)

		w.Write([]byte(`[{"periodo":"2026/04","montoOriginal":1400,"recargo":100.50,"nro_transaccion":901}]`))
	}))
	defer server.Close()

	client := NewCedulonesClient(server.URL, time.Second, zap.NewNop())

	detalles, err := client.GetDetalle(context.Background(), 3045)
	require.NoError(t, err)
	require.Len(t, detalles, 1)
	assert.Equal(t, 901, detalles[0].NroTransaccion)
	assert.Equal(t, 100.50, detalles[0].Recargo)
}

func TestEmitirCedulon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Credito/EmitirCedulonCredito", r.URL.Path)

		var req models.CedulonRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 3500.75, req.MontoCedulon)
		require.Len(t, req.ListDeuda, 2)

		w.Write([]byte(`{"nroCedulon":3045}`))
	}))
	defer server.Close()

	client := NewCedulonesClient(server.URL, time.Second, zap.NewNop())

	req := models.CedulonRequest{
		IDCreditoMateriales: 7,
		Legajo:              4520,
		MontoCedulon:        3500.75,
		ListDeuda: []models.DeudaCedulon{
			{NroTransaccion: 901, Debe: 1500.50},
			{NroTransaccion: 902, Debe: 2000.25},
		},
	}

	nro, err := client.EmitirCedulon(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3045, nro)
}
