package httpapi

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
	"blind75-generator/internal/usecase"
)

const previewRows = 3

// Exporter produces export files on demand.
type Exporter interface {
	Generate(ctx context.Context, req usecase.ExportRequest) (*model.ExportFile, error)
}

// CatalogView exposes the display-only views of the catalog.
type CatalogView interface {
	Stats() model.CatalogStats
	Preview(limit int) model.Preview
}

// PageConfig holds the values rendered into the page.
type PageConfig struct {
	SampleSize    int
	ToastDuration time.Duration
	Timeout       time.Duration
}

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	exporter Exporter
	catalog  CatalogView
	logger   ports.Logger
	cfg      PageConfig
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(exporter Exporter, catalog CatalogView, logger ports.Logger, cfg PageConfig) *Handler {
	return &Handler{
		exporter: exporter,
		catalog:  catalog,
		logger:   logger,
		cfg:      cfg,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// GET /
func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", newPage(h.catalog, h.cfg))
}

// GET /api/export?size=&format=
func (h *Handler) export(c *gin.Context) {
	req, err := parseExportRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	file, err := h.exporter.Generate(ctx, req)
	if err != nil {
		_ = c.Error(err)
		status, msg := exportFailure(err)
		h.logger.Warn(ctx, "export request failed", "status", status, "error", err)
		respondError(c, status, msg)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Header("Cache-Control", "no-store")
	c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// GET /api/stats
func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

// GET /api/preview
func (h *Handler) preview(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Preview(previewRows))
}

// GET /healthz
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "problems": h.catalog.Stats().Problems})
}

func parseExportRequest(c *gin.Context) (usecase.ExportRequest, error) {
	var req usecase.ExportRequest

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return req, fmt.Errorf("size must be a positive integer, got %q", raw)
		}
		req.Size = size
	}

	format, err := model.ParseFormat(c.Query("format"))
	if err != nil {
		return req, err
	}
	req.Format = format

	return req, nil
}

func exportFailure(err error) (int, string) {
	var serr *model.SerializationError
	switch {
	case errors.Is(err, model.ErrEmptyCatalog):
		return http.StatusUnprocessableEntity, "no problems available to export"
	case errors.Is(err, model.ErrUnsupportedFormat), errors.Is(err, model.ErrInvalidSampleSize):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "export timed out"
	case errors.As(err, &serr):
		return http.StatusInternalServerError, "could not build the spreadsheet"
	default:
		return http.StatusInternalServerError, "export failed"
	}
}
