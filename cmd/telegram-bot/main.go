package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery-planner/internal/app"
	"grocery-planner/internal/config"
	"grocery-planner/internal/database"
	"grocery-planner/internal/entitystore"
	"grocery-planner/internal/export"
	"grocery-planner/internal/llm"
	"grocery-planner/internal/mealplan"
	"grocery-planner/internal/metrics"
	"grocery-planner/internal/pricing"
	"grocery-planner/internal/storage"
	"grocery-planner/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	plannerModel := llm.NewGroqClient(cfg, llm.ModelPlanner, 0.3)

	pricerModel, geminiCloser, err := llm.NewGeminiClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiCloser.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	planRepo := mealplan.NewRepository(db.SQL)
	listRepo := storage.NewListRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	exporter, err := export.NewExporter("data/exports")
	if err != nil {
		log.Fatalf("Failed to initialize exporter: %v", err)
	}

	var storeClient entitystore.Client
	if cfg.StoreAPIURL != "" {
		storeClient = entitystore.NewClient(cfg)
	}

	generator := mealplan.NewGenerator(plannerModel)

	looker := pricing.NewLLMLooker(pricerModel)
	if cfg.PriceSearchURL != "" {
		looker = pricing.NewWebLooker(cfg.PriceSearchURL, pricerModel)
	}
	pricer := pricing.NewPricer(looker, metricsStore)

	application := app.NewApp(cfg, db, planRepo, listRepo, generator, pricer, metricsStore, exporter, storeClient)

	bot, err := telegram.NewBot(cfg, application)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
