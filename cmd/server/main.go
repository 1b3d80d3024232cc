package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/omashasarra/hasbani-backend/internal/config"
	"github.com/omashasarra/hasbani-backend/internal/httpserver"
	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/middleware"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/service"
	"github.com/omashasarra/hasbani-backend/internal/upload"
)

func main() {
	cfg := config.Load()
	cfg.MustValidate()

	logger := logging.New(cfg.LogLevel).With("service", "catalog-admin")
	slog.SetDefault(logger)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{Repo: r, Secret: cfg.JWTSecret}
	catalogSvc := &service.CatalogService{Repo: r, Uploads: uploads}
	adminSvc := &service.AdminService{Repo: r}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpserver.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))

	corsCfg := echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}
	if cfg.Environment != "production" {
		// Outside production any origin may call the API.
		corsCfg.AllowOriginFunc = func(origin string) (bool, error) { return true, nil }
	}
	e.Use(echomw.CORSWithConfig(corsCfg))

	httpserver.Register(e, &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Svc: authSvc},
		Catalog:   &httpserver.CatalogHTTP{Svc: catalogSvc},
		Admin:     &httpserver.AdminHTTP{Svc: adminSvc},
		Health:    &httpserver.HealthHTTP{Database: cfg.DBName, Environment: cfg.Environment},
		AuthMW:    middleware.NewAuthMiddleware(cfg.JWTSecret),
		UploadDir: uploads.Dir(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
