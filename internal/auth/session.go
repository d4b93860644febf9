// Package auth reads the operator identity from the cookie set by the CIDI
// login portal. The cookie value is an ampersand-delimited, URL-encoded
// key=value list; parsing never fails, it only yields "no identity".
package auth

import (
	"net/url"
	"strings"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// DefaultCookieName is the cookie the external login flow sets.
const DefaultCookieName = "VABack.CIDI"

// ParseCookie parses a raw CIDI cookie value into a Usuario. It returns nil
// when the value is empty, malformed, or lacks nombre_completo; malformed
// pairs are skipped rather than rejected.
func ParseCookie(value string) *models.Usuario {
	if value == "" {
		return nil
	}

	campos := make(map[string]string)
	for _, par := range strings.Split(value, "&") {
		idx := strings.Index(par, "=")
		if idx <= 0 {
			continue
		}
		clave := par[:idx]
		crudo := strings.ReplaceAll(par[idx+1:], "+", " ")
		valor, err := url.QueryUnescape(crudo)
		if err != nil {
			valor = crudo
		}
		if valor != "" {
			campos[clave] = valor
		}
	}

	if campos["nombre_completo"] == "" {
		return nil
	}

	return &models.Usuario{
		Administrador:  campos["administrador"],
		Apellido:       campos["apellido"],
		CodOficina:     campos["cod_oficina"],
		CodUsuario:     campos["cod_usuario"],
		Cuit:           campos["cuit"],
		CuitFormateado: campos["cuit_formateado"],
		Legajo:         campos["legajo"],
		Nombre:         campos["nombre"],
		NombreCompleto: campos["nombre_completo"],
		NombreOficina:  campos["nombre_oficina"],
		NombreUsuario:  campos["nombre_usuario"],
		SesionHash:     campos["SesionHash"],
	}
}
