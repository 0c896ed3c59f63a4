// Package httpapi serves the generator page and the export API.
package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"blind75-generator/internal/domain/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RouterOptions tunes the optional parts of the router.
type RouterOptions struct {
	ExportLimiter *rate.Limiter
	Metrics       http.Handler
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler, logger ports.Logger, opts RouterOptions) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.index)
	router.GET("/healthz", h.health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	api := router.Group("/api")
	{
		api.GET("/export", RateLimit(opts.ExportLimiter), h.export)
		api.GET("/stats", h.stats)
		api.GET("/preview", h.preview)
	}

	return router, nil
}
