package main

import (
	"context"
	"errors"
	"frameshop/internal/config"
	"frameshop/internal/service/frame"
	generate_excel "frameshop/internal/service/generate-excel"
	"frameshop/internal/storage/migrations"
	"frameshop/internal/storage/mysql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if cfg.MigrateOnUp {
		if err := migrations.Up(storage.DB()); err != nil {
			log.Error("failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	costService := frame.NewCostService(storage)
	stockService := frame.NewStockService(storage)
	genService := generate_excel.NewGenerateService(costService, stockService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, costService, stockService, genService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

// Handle пишет всё в stdout, ошибки дополнительно в errors.log.
// Сбой записи в файл не роняет основной вывод.
func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// без файла тоже работаем
		slog.Warn("Cannot open error log file", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
