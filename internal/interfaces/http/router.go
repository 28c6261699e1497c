// Package http wires the gin route tree and the HTTP server for the
// FilingDesk API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/FilingDesk/internal/interfaces/http/handlers"
	"github.com/turtacn/FilingDesk/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies needed to
// build the complete route tree.
type RouterConfig struct {
	FilingHandler   *handlers.FilingHandler
	DocumentHandler *handlers.DocumentHandler
	ArtifactHandler *handlers.ArtifactHandler // nil when no object store is configured
	HealthHandler   *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.Metrics
	Mode    string // gin mode: "debug" | "release" | "test"
	CORS    *middleware.CORSConfig
}

// NewRouter builds the gin engine with global middleware, the public health
// and metrics endpoints, and the /api/v1 resource groups.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()

	log := cfg.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log, cfg.Metrics))

	corsCfg := middleware.DefaultCORSConfig()
	if cfg.CORS != nil {
		corsCfg = *cfg.CORS
	}
	r.Use(middleware.CORS(corsCfg))

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	registerFilingRoutes(api, cfg.FilingHandler, cfg.DocumentHandler)

	if cfg.ArtifactHandler != nil {
		api.GET("/artifacts/*key", cfg.ArtifactHandler.Download)
		api.GET("/artifact-urls/*key", cfg.ArtifactHandler.DownloadURL)
	}

	return r
}

func registerFilingRoutes(api *gin.RouterGroup, fh *handlers.FilingHandler, dh *handlers.DocumentHandler) {
	if fh != nil {
		filings := api.Group("/filings")
		filings.POST("", fh.Create)
		filings.GET("", fh.List)
		filings.GET("/:docket", fh.Get)
		filings.DELETE("/:docket", fh.Delete)

		filings.PUT("/:docket/fields/:field", fh.SetField)

		filings.POST("/:docket/lists/:list/entries", fh.AddEntry)
		filings.DELETE("/:docket/lists/:list/entries/:index", fh.RemoveEntry)
		filings.PUT("/:docket/lists/:list/entries/:index/fields/:field", fh.UpdateEntry)
	}

	if dh != nil {
		api.GET("/document-kinds", dh.Kinds)

		docs := api.Group("/filings/:docket")
		docs.GET("/fees", dh.Fees)
		docs.GET("/documents/:kind/preview", dh.Preview)
		docs.POST("/documents/:kind", dh.Generate)
		docs.POST("/documents", dh.GenerateAll)
	}
}
