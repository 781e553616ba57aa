package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/amirlan/photobooking/internal/config"
	"github.com/amirlan/photobooking/internal/db"
	"github.com/amirlan/photobooking/internal/handler"
	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/router"
	"github.com/amirlan/photobooking/internal/service"
)

func main() {
	// .env опционален, в проде окружение задаётся снаружи.
	_ = godotenv.Load()

	// 1. Загружаем конфиги из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	httpCfg := config.LoadHTTPConfig()

	// 2. Логгер.
	appLog, err := logger.New(httpCfg.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer appLog.Sync()

	// 3. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		appLog.Fatal("init db", "error", err)
	}

	// 4. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		appLog.Fatal("auto migrate", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		appLog.Fatal("sql DB", "error", err)
	}
	defer sqlDB.Close()

	// 5. Сервисы поверх GORM.
	bookingSvc := service.NewBookingService(gormDB, appLog)
	catalogSvc := service.NewCatalogService(gormDB, appLog)
	associationSvc := service.NewAssociationService(gormDB, appLog)

	// 6. HTTP-хендлеры и роутер.
	validate := validator.New()
	gin.SetMode(ginMode(httpCfg.Mode))
	engine := router.New(router.Config{
		Log:           appLog,
		CORSOrigins:   httpCfg.CORSOrigins,
		Clients:       handler.NewClientHandler(catalogSvc, validate, appLog),
		Photographers: handler.NewPhotographerHandler(catalogSvc, validate, appLog),
		Services:      handler.NewServiceHandler(catalogSvc, bookingSvc, validate, appLog),
		Bookings:      handler.NewBookingHandler(bookingSvc, validate, appLog),
		Associations:  handler.NewAssociationHandler(associationSvc, validate, appLog),
	})

	srv := &http.Server{
		Addr:    ":" + httpCfg.Port,
		Handler: engine,
	}

	appLog.Info("http server listening", "addr", srv.Addr)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("http serve", "error", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	appLog.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("shutdown", "error", err)
	}
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
