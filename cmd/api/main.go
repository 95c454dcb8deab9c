package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	dbadapter "github.com/kcyeo92/Workshop-Manager/internal/adapter/db"
	httpadapter "github.com/kcyeo92/Workshop-Manager/internal/adapter/http"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/handlers"
	httpmiddleware "github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/photostore"
	"github.com/kcyeo92/Workshop-Manager/internal/app/service"
	"github.com/kcyeo92/Workshop-Manager/internal/config"
	"github.com/kcyeo92/Workshop-Manager/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskService := service.NewTaskService(dbadapter.NewTaskRepository(db))
	invoiceService := service.NewInvoiceService(dbadapter.NewInvoiceRepository(db))
	directoryService := service.NewDirectoryService(
		dbadapter.NewCustomerRepository(db),
		dbadapter.NewWorkerRepository(db),
		dbadapter.NewLineItemTemplateRepository(db),
	)
	photoStore := photostore.NewLocalStore(afero.NewOsFs(), cfg.PhotoDir, cfg.AppBaseURL)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:           handlers.NewHealthHandler(db),
		Task:             handlers.NewTaskHandler(taskService),
		Invoice:          handlers.NewInvoiceHandler(invoiceService),
		Customer:         handlers.NewCustomerHandler(directoryService),
		Worker:           handlers.NewWorkerHandler(directoryService),
		LineItemTemplate: handlers.NewLineItemTemplateHandler(directoryService),
		Photo:            handlers.NewPhotoHandler(photoStore),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
