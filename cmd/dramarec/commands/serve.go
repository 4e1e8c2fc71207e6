package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/config"
	"github.com/hallyulab/dramarec/internal/domain/record"
	logpkg "github.com/hallyulab/dramarec/internal/logger"
	"github.com/hallyulab/dramarec/internal/metrics"
	"github.com/hallyulab/dramarec/internal/repository/catalog"
	"github.com/hallyulab/dramarec/internal/text"
	chiTransport "github.com/hallyulab/dramarec/internal/transport/chi"
	healthuc "github.com/hallyulab/dramarec/internal/usecase/health"
	recommenduc "github.com/hallyulab/dramarec/internal/usecase/recommend"
	"github.com/hallyulab/dramarec/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dramarec API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	records, source, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("records", len(records)),
	)

	norm, err := buildNormalizer(cfg.Engine.StopwordsPath)
	if err != nil {
		return fmt.Errorf("load stopwords: %w", err)
	}

	// Build the engine — composition root
	buildStart := time.Now()
	engine := recommenduc.New(records, norm)
	if cfg.Engine.FuzzyCutoff > 0 {
		engine = engine.WithFuzzyCutoff(cfg.Engine.FuzzyCutoff)
	}
	instrumented := recommenduc.NewInstrumented(engine, logger)
	logger.Info("Index built",
		zap.Int("vocabulary_terms", engine.VocabularyTerms()),
		zap.Duration("build_duration", time.Since(buildStart)),
	)

	healthSvc := healthuc.New(instrumented)

	// Create chi server
	server := chiTransport.NewServer(instrumented, healthSvc, cfg.Engine.TopK, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(corsOptions(cfg.HTTP.CORSOrigins)))
	if cfg.HTTP.RateLimitPerMin > 0 {
		r.Use(httprate.LimitByIP(cfg.HTTP.RateLimitPerMin, time.Minute))
	}
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// loadCatalog reads the configured CSV, or the bundled sample when no path
// is set. Returns the source description for logging.
func loadCatalog(path string) ([]record.Record, string, error) {
	if path == "" {
		records, err := catalog.LoadSample()
		return records, "bundled sample", err
	}
	records, err := catalog.Load(path)
	return records, path, err
}

func buildNormalizer(stopwordsPath string) (*text.Normalizer, error) {
	if stopwordsPath == "" {
		return text.NewNormalizer(), nil
	}
	words, err := catalog.LoadStopwords(stopwordsPath)
	if err != nil {
		return nil, err
	}
	return text.NewNormalizerWith(words), nil
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
