package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

const usuarioKey = "usuario_cidi"

// Middleware blocks every request that does not carry a valid identity
// cookie. Handlers behind it can rely on UsuarioActual returning a user.
func Middleware(cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		valor, err := c.Cookie(cookieName)
		if err != nil {
			logger.Debug("identity cookie missing", zap.String("cookie", cookieName))
			abortDenied(c)
			return
		}

		usuario := ParseCookie(valor)
		if usuario == nil {
			logger.Debug("identity cookie rejected", zap.String("cookie", cookieName))
			abortDenied(c)
			return
		}

		c.Set(usuarioKey, usuario)
		c.Next()
	}
}

func abortDenied(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "acceso denegado",
	})
}

// UsuarioActual returns the identity attached by Middleware, or nil outside
// of it.
func UsuarioActual(c *gin.Context) *models.Usuario {
	v, ok := c.Get(usuarioKey)
	if !ok {
		return nil
	}
	usuario, _ := v.(*models.Usuario)
	return usuario
}
