// Package httpapi exposes the search and maze engine over HTTP with gin.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controller registers a group of routes under the versioned API group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	mode        string
	controllers []Controller
	logger      *slog.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Mode        string // Gin mode; empty keeps the current mode
	Controllers []Controller
	Logger      *slog.Logger // Access log; nil means slog.Default
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		mode:        config.Mode,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Handler builds the gin engine with all routes:
//   - GET  /healthz, GET /metrics at the root;
//   - every controller under <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	if r.mode != "" {
		gin.SetMode(r.mode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(r.logger))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(r.baseURL)
	{
		public := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(public)
		}
	}

	return router
}

// Server returns an http.Server bound to the configured address.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:    r.addr,
		Handler: r.Handler(),
	}
}
