package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escribirConfig(t *testing.T, contenido string) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(ruta, []byte(contenido), 0o644))
	return ruta
}

func TestLoad(t *testing.T) {
	ruta := escribirConfig(t, `
server:
  port: 9090
upstream:
  api_base_url: "http://creditos.test/api"
  cedulones_base_url: "http://cedulones.test/api"
`)

	cfg, err := Load(ruta)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://creditos.test/api", cfg.Upstream.APIBaseURL)
	assert.Equal(t, "http://cedulones.test/api", cfg.Upstream.CedulonesBaseURL)

	// Defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "VABack.CIDI", cfg.Auth.CookieName)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "MUNICIPALIDAD DE VILLA ALLENDE", cfg.Cedulon.Municipio)
}

func TestLoadExigeBaseURLs(t *testing.T) {
	ruta := escribirConfig(t, `
server:
  port: 9090
`)

	_, err := Load(ruta)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_base_url")
}

func TestLoadArchivoInexistente(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}
