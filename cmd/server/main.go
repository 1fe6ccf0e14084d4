package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/config"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/handlers"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/middleware"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/repository"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/service"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/store"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting e-commerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	client, err := store.Connect(connectCtx, cfg.Mongo.URI)
	cancelConnect()
	if err != nil {
		log.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	log.Info("connected to store", "database", cfg.Mongo.Database)

	gateway := store.NewGateway(client, cfg.Mongo.Database)

	// Initialize repositories
	productRepo := repository.NewMongoProductRepository(gateway)
	orderRepo := repository.NewMongoOrderRepository(gateway)

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(productRepo, orderRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Root health check
	r.Get("/", healthHandler.ServeHTTP)

	// Product endpoints
	r.Post("/products", productHandler.CreateProduct)
	r.Get("/products", productHandler.ListProducts)

	// Order endpoints
	r.Post("/orders", orderHandler.CreateOrder)
	r.Get("/orders/{userId}", orderHandler.ListOrders)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close the store connection after in-flight requests have drained
	if err := client.Disconnect(ctx); err != nil {
		log.Error("failed to disconnect from store", "error", err)
	}

	log.Info("server stopped gracefully")
}
