package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"memd/internal/catalog"
	"memd/internal/config"
	"memd/internal/httpapi"
	"memd/internal/manager"
	"memd/internal/store"
	"memd/internal/sysmem"
)

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("MEMD_ADDR", ":8090"), "HTTP listen address, e.g. :8090")
	modelsDir := flag.String("models-dir", envOr("MEMD_MODELS_DIR", "~/models"), "Directory to scan for model files (*.gguf, *.bin, *.onnx)")
	maxMemory := flag.Int64("max-memory-bytes", 0, "Memory budget in bytes for loaded models (0=half of system RAM)")
	defaultModel := flag.String("default-model", envOr("MEMD_DEFAULT_MODEL", ""), "Default model id when request omits model")
	storePath := flag.String("store-path", envOr("MEMD_STORE_PATH", ""), "SQLite path for the access log (empty=disabled)")
	configPath := flag.String("config", envOr("MEMD_CONFIG", ""), "Optional config file (json, yaml, or toml); flags override")
	logLevel := flag.String("log-level", envOr("MEMD_LOG_LEVEL", "info"), "Log level: trace, debug, info, warn, error")
	logPretty := flag.Bool("log-pretty", false, "Human-readable console logs instead of JSON")
	corsEnabled := flag.Bool("cors-enabled", false, "Enable CORS middleware")
	corsOrigins := flag.String("cors-origins", "*", "Comma-separated list of allowed CORS origins")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			l := zerolog.New(os.Stderr)
			l.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		applyConfig(cfg, addr, modelsDir, maxMemory, defaultModel, storePath, logLevel, corsEnabled, corsOrigins)
	}

	logger := newLogger(*logLevel, *logPretty)

	budget := *maxMemory
	if budget <= 0 {
		budget = sysmem.DefaultBudgetBytes()
	}

	cat, err := catalog.LoadDir(*modelsDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", *modelsDir).Msg("scan models dir")
	}

	cfg := manager.ManagerConfig{
		Catalog:        cat,
		MaxMemoryBytes: budget,
		DefaultModel:   *defaultModel,
		Logger:         &logger,
	}

	var db *store.DB
	if *storePath != "" {
		db, err = store.Open(*storePath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *storePath).Msg("open access store")
		}
		cfg.Access = db
	}

	mgr := manager.NewWithConfig(cfg)

	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(*corsEnabled, splitCSV(*corsOrigins))
	srv := &http.Server{Addr: *addr, Handler: httpapi.NewMux(mgr)}

	go func() {
		logger.Info().
			Str("addr", *addr).
			Str("models_dir", *modelsDir).
			Int64("max_memory_bytes", budget).
			Int("models", len(cat)).
			Msg("memd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("graceful shutdown error")
	}
	mgr.Close()
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("close access store")
		}
	}
}

// newLogger builds the process logger. JSON by default, console format
// when pretty is set.
func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// applyConfig fills in flag values from the config file for any flag that
// was left at its zero default. CLI flags win over the file.
func applyConfig(cfg config.Config, addr, modelsDir *string, maxMemory *int64, defaultModel, storePath, logLevel *string, corsEnabled *bool, corsOrigins *string) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if cfg.Addr != "" && !set["addr"] {
		*addr = cfg.Addr
	}
	if cfg.ModelsDir != "" && !set["models-dir"] {
		*modelsDir = cfg.ModelsDir
	}
	if cfg.MaxMemoryBytes > 0 && !set["max-memory-bytes"] {
		*maxMemory = cfg.MaxMemoryBytes
	}
	if cfg.DefaultModel != "" && !set["default-model"] {
		*defaultModel = cfg.DefaultModel
	}
	if cfg.StorePath != "" && !set["store-path"] {
		*storePath = cfg.StorePath
	}
	if cfg.LogLevel != "" && !set["log-level"] {
		*logLevel = cfg.LogLevel
	}
	if cfg.CORSEnabled && !set["cors-enabled"] {
		*corsEnabled = true
	}
	if len(cfg.CORSOrigins) > 0 && !set["cors-origins"] {
		*corsOrigins = strings.Join(cfg.CORSOrigins, ",")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
