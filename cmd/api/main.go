//	@title			QR Drop API
//	@version		1.0
//	@description	Renders URLs as QR codes and publishes them to S3.
//
//	@host		localhost:8000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/qrdrop/service/internal/config"
	appMiddleware "github.com/qrdrop/service/internal/middleware"
	"github.com/qrdrop/service/internal/qr"
	"github.com/qrdrop/service/internal/response"
	"github.com/qrdrop/service/internal/storage"

	_ "github.com/qrdrop/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStorage(cfg.MinioOptions())
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: stores → service → handler
	qrSvc := qr.NewService(storage.NewLocalStorage(config.LocalDir), store, config.RemotePrefix)
	qrHandler := qr.NewHandler(qrSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, qrHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if !cfg.IsProduction() {
			log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

func newRouter(cfg *config.Config, qrHandler *qr.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	// Swagger UI — available at http://localhost:8000/swagger/
	if !cfg.IsProduction() {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Post("/generate-qr/", qrHandler.Generate)
	r.Post("/generate-qr", qrHandler.Generate)

	return r
}
