package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zynoshop/storefront-backend/internal/config"
	"github.com/zynoshop/storefront-backend/internal/handlers"
	"github.com/zynoshop/storefront-backend/internal/middleware"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"github.com/zynoshop/storefront-backend/internal/service"
	"github.com/zynoshop/storefront-backend/pkg/logger"
)

// version is stamped by the release build via -ldflags "-X main.version=..."
var version = "dev"

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

	log.Info("starting storefront api server",
		"version", version,
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"storage", cfg.Storage.Backend,
		"log_level", cfg.LogLevel,
	)

	// Initialize stores
	stores, err := buildStores(cfg)
	if err != nil {
		log.Error("failed to initialize stores", "error", err)
		os.Exit(1)
	}

	if cfg.Storage.Seed {
		if err := stores.SeedProducts(context.Background()); err != nil {
			log.Error("failed to seed product catalog", "error", err)
			os.Exit(1)
		}
	}

	// Initialize services
	userService := service.NewUserService(stores.Users, stores.Products)
	productService := service.NewProductService(stores.Products, stores.Reviews, stores.Orders)
	orderService := service.NewOrderService(stores.Orders)
	cartItemService := service.NewCartItemService(stores.CartItems, stores.Products)
	reviewService := service.NewReviewService(stores.Reviews)
	imageService := service.NewImageService(stores.Images, stores.Products)
	transactionService := service.NewTransactionService(stores.Transactions)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(version, log)
	userHandler := handlers.NewUserHandler(userService, log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	cartItemHandler := handlers.NewCartItemHandler(cartItemService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	imageHandler := handlers.NewImageHandler(imageService, log)
	transactionHandler := handlers.NewTransactionHandler(transactionService, log)

	// Metrics registry
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(metrics.Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	auth := middleware.APIKeyAuth(cfg.Auth)

	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/users", func(r chi.Router) {
		r.Get("/all", userHandler.ListUsers)
		r.Get("/{username}", userHandler.GetUser)
		r.Get("/{username}/wishlist", userHandler.GetWishlist)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/save", userHandler.SaveUser)
			r.Put("/update/{username}", userHandler.UpdateUser)
			r.Delete("/delete/{username}", userHandler.DeleteUser)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/all", productHandler.ListProducts)
		r.Get("/category/{category}", productHandler.GetProductsByCategory)
		r.Get("/price-range", productHandler.GetProductsByPriceRange)
		r.Get("/name/{name}", productHandler.GetProductsByName)
		r.Get("/description/{description}", productHandler.GetProductsByDescription)
		r.Get("/rating/{rating}", productHandler.GetProductsByRating)
		r.Get("/review-content", productHandler.GetProductsByReviewContent)
		r.Get("/reviewer/{userId}", productHandler.GetProductsByReviewer)
		r.Get("/order/{orderId}", productHandler.GetProductsByOrderID)
		r.Get("/{id}", productHandler.GetProduct)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/save", productHandler.SaveProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/delete/{id}", productHandler.DeleteProduct)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/all", orderHandler.ListOrders)
		r.Get("/user/{userId}", orderHandler.GetOrdersByUser)
		r.Get("/product/{productId}", orderHandler.GetOrdersByProductID)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/save", orderHandler.SaveOrder)
			r.Put("/update/{id}", orderHandler.UpdateOrder)
			r.Delete("/delete/{id}", orderHandler.DeleteOrder)
		})
	})

	r.Route("/cart-items", func(r chi.Router) {
		r.Get("/all", cartItemHandler.ListCartItems)
		r.Get("/user/{userId}", cartItemHandler.GetCartItemsByUser)
		r.Get("/product/{productId}", cartItemHandler.GetCartItemsByProductID)
		r.Get("/category/{category}", cartItemHandler.GetCartItemsByCategory)
		r.Get("/name/{name}", cartItemHandler.GetCartItemsByName)
		r.Get("/price-range", cartItemHandler.GetCartItemsByPriceRange)
		r.Get("/{id}", cartItemHandler.GetCartItem)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/add", cartItemHandler.AddCartItem)
			r.Put("/{id}", cartItemHandler.UpdateCartItem)
			r.Delete("/remove/{id}", cartItemHandler.RemoveCartItem)
		})
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/all", reviewHandler.ListReviews)
		r.Get("/product/{productId}", reviewHandler.GetReviewsByProductID)
		r.Get("/user/{userId}", reviewHandler.GetReviewsByUser)
		r.Get("/rating", reviewHandler.GetReviewsByRating)
		r.Get("/content", reviewHandler.GetReviewsByContent)
		r.Get("/{id}", reviewHandler.GetReview)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/save", reviewHandler.SaveReview)
			r.Put("/update/{id}", reviewHandler.UpdateReview)
			r.Delete("/delete/{id}", reviewHandler.DeleteReview)
		})
	})

	r.Route("/images", func(r chi.Router) {
		r.Get("/all", imageHandler.ListImages)
		r.Get("/download/{id}", imageHandler.DownloadImage)
		r.Get("/product/{productId}", imageHandler.GetImagesByProductID)
		r.Get("/content-type", imageHandler.GetImagesByContentType)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/upload", imageHandler.UploadImage)
			r.Delete("/delete/{id}", imageHandler.DeleteImage)
		})
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/all", transactionHandler.ListTransactions)
		r.Get("/order/{orderId}", transactionHandler.GetTransactionByOrderID)
		r.Get("/{id}", transactionHandler.GetTransaction)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/save", transactionHandler.SaveTransaction)
			r.Put("/update/{id}", transactionHandler.UpdateTransaction)
			r.Delete("/delete/{id}", transactionHandler.DeleteTransaction)
		})
	})

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

	log.Info("server stopped gracefully")
}

func buildStores(cfg *config.Config) (*repository.Stores, error) {
	if strings.ToLower(cfg.Storage.Backend) == "sqlite" {
		db, err := repository.OpenDB(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteStores(db)
	}
	return repository.NewMemoryStores(), nil
}
