package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studybuddy/internal/config"
	"studybuddy/internal/event"
	"studybuddy/internal/handlers"
	"studybuddy/internal/llm"
	"studybuddy/internal/storage"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var store storage.Storage
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStorage(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Println("Using Postgres storage")
	} else {
		store = storage.NewMemStorage()
		log.Println("DATABASE_URL not set, using in-memory storage")
	}
	if err := storage.Seed(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed storage: %v", err)
	}

	client := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.LLMModel,
	})
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not set, generation endpoints will fail")
	}

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.NewHandler(store, client, publisher, cfg.JWTSecret)
	h.RegisterRoutes(r)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
