package di

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"golang.org/x/time/rate"

	"blind75-generator/internal/adapter/catalog"
	"blind75-generator/internal/adapter/csvsheet"
	"blind75-generator/internal/adapter/filesystem"
	"blind75-generator/internal/adapter/httpapi"
	"blind75-generator/internal/adapter/logging"
	"blind75-generator/internal/adapter/metrics"
	"blind75-generator/internal/adapter/xlsx"
	"blind75-generator/internal/app"
	"blind75-generator/internal/config"
	"blind75-generator/internal/domain/ports"
	"blind75-generator/internal/domain/sampling"
	"blind75-generator/internal/usecase"
)

// OutputDir is the directory the CLI writes exports into.
type OutputDir string

var exportSet = wire.NewSet(
	config.Load,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideCatalog,
	wire.Bind(new(ports.ProblemProvider), new(*catalog.Store)),
	sampling.New,
	provideEncoders,
	provideExportConfig,
	usecase.NewGenerator,
	usecase.NewArchiver,
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

// CLI output goes to stdout, so logs move to stderr.
func provideCLISlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stderr, cfg.LogLevel)
}

func provideCatalog(cfg *config.Config, logger ports.Logger) (*catalog.Store, error) {
	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logger.Info(context.Background(), "catalog loaded", "source", store.Source(), "problems", store.Len())
	return store, nil
}

func provideEncoders() []ports.SheetEncoder {
	return []ports.SheetEncoder{xlsx.New(), csvsheet.New()}
}

func provideExportConfig(cfg *config.Config) usecase.ExportConfig {
	return usecase.ExportConfig{
		SampleSize: cfg.SampleSize,
		Filename:   cfg.ExportFilename,
		SheetName:  cfg.SheetName,
		Format:     cfg.ExportFormat,
	}
}

func provideRecorder(store *catalog.Store) *metrics.Recorder {
	recorder := metrics.NewRecorder()
	recorder.SetCatalogSize(store.Len())
	return recorder
}

// Scheduled exports keep every run, so file names carry a timestamp.
func provideArchiveSink(cfg *config.Config) ports.FileSink {
	return filesystem.NewSink(cfg.ExportDir, true)
}

func provideCLISink(dir OutputDir) ports.FileSink {
	return filesystem.NewSink(string(dir), false)
}

func provideNoRecorder() ports.ExportRecorder {
	return nil
}

func provideHandler(gen *usecase.Generator, store *catalog.Store, logger ports.Logger, cfg *config.Config) *httpapi.Handler {
	return httpapi.NewHandler(gen, store, logger, httpapi.PageConfig{
		SampleSize:    cfg.SampleSize,
		ToastDuration: cfg.ToastDuration,
		Timeout:       cfg.RequestTimeout,
	})
}

func provideRouter(h *httpapi.Handler, logger ports.Logger, recorder *metrics.Recorder, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	return httpapi.NewRouter(h, logger, httpapi.RouterOptions{
		ExportLimiter: provideExportLimiter(cfg),
		Metrics:       recorder.Handler(),
	})
}

// A zero EXPORT_RATE_LIMIT turns limiting off.
func provideExportLimiter(cfg *config.Config) *rate.Limiter {
	if cfg.ExportRateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.ExportRateLimit), cfg.ExportRateBurst)
}

func provideServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:        cfg.ExportSchedule,
		ShutdownTimeout: cfg.ShutdownTimeout,
		JobTimeout:      cfg.RequestTimeout,
	}
}
