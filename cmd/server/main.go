package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Neha220803/neha-wishlist/docs"
	"github.com/Neha220803/neha-wishlist/internal/config"
	"github.com/Neha220803/neha-wishlist/internal/database"
	"github.com/Neha220803/neha-wishlist/internal/handlers"
	mW "github.com/Neha220803/neha-wishlist/internal/middleware"
	"github.com/Neha220803/neha-wishlist/internal/services"
)

// @title Wishlist Tracker API
// @version 1.0
// @description Personal finance and wishlist tracking backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("pin.code", "PIN_CODE")
	viper.BindEnv("pin.hash", "PIN_HASH")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")
	viper.BindEnv("argon2.salt_length", "ARGON2_SALT_LENGTH")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	serverCfg := config.LoadServerConfig()

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "Wishlist Tracker API"
	docs.SwaggerInfo.Description = "Personal finance and wishlist tracking backend"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + serverCfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Initialize stores
	db := database.InitDatabase()
	defer db.Close()

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize services
	moneyService := services.NewMoneyService(db, redisClient)
	transactionService := services.NewTransactionService(db, moneyService)
	wishlistService := services.NewWishlistService(db, moneyService)
	allocationService := services.NewAllocationService(db, moneyService)
	authService := services.NewAuthService(redisClient)
	shareService := services.NewShareService(db, redisClient)
	shareHandler := handlers.NewShareHandler(shareService)

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(serverCfg.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           serverCfg.CORSMaxAge,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		if err := db.Ping(); err != nil {
			status = "degraded"
		}
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+serverCfg.Port+"/swagger/doc.json"),
	))

	// Static file server for wishlist item icons
	r.Handle("/static/icons/*", http.StripPrefix("/static/icons/",
		mW.StaticFileServer(serverCfg.IconDir)))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (reads and the PIN gate itself)
		r.Post("/auth/verify-pin", authService.VerifyPIN)
		r.Post("/auth/logout", authService.Logout)

		r.Get("/transactions", transactionService.ListTransactions)
		r.Get("/money", moneyService.GetMoney)
		r.Get("/wishlist", wishlistService.ListItems)
		r.Get("/wishlist/{id}", wishlistService.GetItem)
		r.Get("/wishlist/{id}/qr", shareHandler.GenerateItemQR)
		r.Get("/share/{code}", shareHandler.ResolveShareCode)

		// Protected endpoints (PIN session required for mutations)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Post("/transactions", transactionService.CreateTransaction)
			r.Delete("/transactions/{id}", transactionService.DeleteTransaction)

			r.Post("/allocate", allocationService.Allocate)

			r.Post("/wishlist", wishlistService.CreateItem)
			r.Put("/wishlist/{id}", wishlistService.UpdateItem)
			r.Delete("/wishlist/{id}", wishlistService.DeleteItem)
		})
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + serverCfg.Port,
		Handler:      r,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", serverCfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
