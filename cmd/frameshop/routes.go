package main

import (
	getadmin "frameshop/http-server/admin/get"
	saveadmin "frameshop/http-server/admin/save"
	upadmin "frameshop/http-server/admin/update"
	generate_excel "frameshop/http-server/generate-report/generate-excel"
	"frameshop/http-server/health"
	"frameshop/http-server/production-cost/calculate"
	"frameshop/http-server/stock/check"
	stretcher_requirement "frameshop/http-server/stretcher-requirement"
	"frameshop/internal/config"
	"frameshop/internal/middleware/auth"
	"frameshop/internal/service/frame"
	generate_excel2 "frameshop/internal/service/generate-excel"
	"frameshop/internal/storage/mysql"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, costService *frame.CostService, stockService *frame.StockService, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/health", health.Health(log, storage))

	// расчёты по размеру холста
	router.Post("/api/frames/requirement", stretcher_requirement.CalculateRequirement(log))
	router.Post("/api/stock/check", check.CheckStock(log, stockService))
	router.Post("/api/cost/calculate", calculate.CalculateCost(log, costService))

	router.Get("/api/report/cost-sheet", generate_excel.GenerateCostSheet(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/cost-config", getadmin.GetCostConfigAdmin(log, storage))
	adminRouter.Put("/cost-config", upadmin.UpdateCostConfigAdmin(log, storage))
	adminRouter.Get("/stock", getadmin.GetStockAdmin(log, storage))
	adminRouter.Put("/stock/stretchers", upadmin.UpdateStretcherStockAdmin(log, storage))
	adminRouter.Put("/stock/crossbars", upadmin.UpdateCrossbarStockAdmin(log, storage))
	adminRouter.Get("/stock/cardboard", getadmin.GetCardboardAdmin(log, storage))
	adminRouter.Post("/stock/cardboard", saveadmin.SaveCardboardAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	if cfg.FrontendDir != "" {
		mountFrontend(router, log, cfg.FrontendDir)
	}

	return router
}

// mountFrontend раздаёт собранный SPA: существующие файлы как есть, остальное index.html.
func mountFrontend(router chi.Router, log *slog.Logger, dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена, статика не раздаётся", "path", dir)
		return
	}

	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
