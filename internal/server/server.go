// Package server is the HTTP adapter: it translates console requests into
// service calls and owns nothing but that translation.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/auth"
	"github.com/sistemasvillaallende/Creditos/internal/config"
)

// Server is the HTTP server adapter.
type Server struct {
	cfg        config.ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	logger     *zap.Logger
}

// New creates the HTTP server, wiring middleware and routes.
func New(cfg *config.Config, handlers *Handlers, logger *zap.Logger) *Server {
	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))

	// The console runs on another origin and authenticates by cookie, so
	// credentials must be allowed through.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	if len(corsCfg.AllowOrigins) == 1 && corsCfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	api.Use(auth.Middleware(cfg.Auth.CookieName, logger))
	{
		api.GET("/usuario", handlers.Usuario)

		api.GET("/creditos", handlers.ListarCreditos)
		api.GET("/creditos/paginado", handlers.BuscarPaginado)
		api.GET("/creditos/export", handlers.ExportarCreditos)
		api.POST("/creditos", handlers.NuevoCredito)
		api.GET("/creditos/:id", handlers.GetCredito)
		api.PUT("/creditos/:id", handlers.EditarCredito)
		api.PUT("/creditos/:id/baja", handlers.BajaCredito)
		api.PUT("/creditos/:id/rehabilitar", handlers.RehabilitarCredito)
		api.GET("/creditos/:id/deuda", handlers.ListarDeuda)
		api.POST("/creditos/:id/cedulon", handlers.EmitirCedulon)
		api.GET("/creditos/:id/ctasctes", handlers.CuentaCorriente)

		api.GET("/cedulones/:nro", handlers.GetCedulon)
		api.GET("/cedulones/:nro/pdf", handlers.GetCedulonPDF)

		api.GET("/badec", handlers.BuscarBadec)
		api.GET("/categorias", handlers.Categorias)
		api.GET("/rubros", handlers.Rubros)
		api.GET("/uva", handlers.ValorUva)
		api.POST("/uva", handlers.NuevoValorUva)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		cfg:        cfg.Server,
		httpServer: srv,
		router:     router,
		logger:     logger,
	}
}

// Router exposes the gin engine, mostly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts serving. It blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestIDMiddleware tags every request with an id echoed in the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("ip", c.ClientIP()),
		)
	}
}
