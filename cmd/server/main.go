package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/himalayan-adventures/trek-api/internal/ai"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/config"
	"github.com/himalayan-adventures/trek-api/internal/database"
	"github.com/himalayan-adventures/trek-api/internal/handlers"
	"github.com/himalayan-adventures/trek-api/internal/metrics"
	"github.com/himalayan-adventures/trek-api/internal/notifier"
	"github.com/himalayan-adventures/trek-api/internal/payment"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Select Data Store
	var dataStore store.Store
	if cfg.UseMockData {
		log.Println("Using in-memory fixture store")
		dataStore = store.NewMemStore()
	} else {
		gormStore := store.NewGormStore(db)
		if err := gormStore.Seed(); err != nil {
			log.Fatalf("Failed to seed trek catalog: %v", err)
		}
		dataStore = gormStore
	}

	// Initialize Notifier
	var opsNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			opsNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordOpsChannel)
		}
	}

	// Initialize Handlers
	m := metrics.NewMetrics()
	authHandler := auth.NewAuthHandler(cfg, db)
	gateway := payment.NewSimulator(time.Duration(cfg.PaymentDelayMs)*time.Millisecond, cfg.PaymentSuccessRate)
	aiClient := ai.NewClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel)

	h := handlers.Handlers{
		Auth:    authHandler,
		Trek:    handlers.NewTrekHandler(dataStore),
		Cart:    handlers.NewCartHandler(dataStore, authHandler, m),
		Booking: handlers.NewBookingHandler(db, dataStore, authHandler, gateway, opsNotifier, m),
		Review:  handlers.NewReviewHandler(dataStore, authHandler),
		Profile: handlers.NewProfileHandler(dataStore, authHandler),
		APIKey:  handlers.NewAPIKeyHandler(db, authHandler),
		AI:      handlers.NewAIHandler(dataStore, aiClient, m),
		Export:  handlers.NewExportHandler(dataStore),
		Metrics: m,
	}

	// Initialize Router
	r := chi.NewRouter()
	if cfg.EnableCORS {
		r.Use(corsMiddleware(cfg.FrontendURL))
	}

	// Register Routes
	handlers.RegisterRoutes(r, h)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-KEY")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
