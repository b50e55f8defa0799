package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-tracker/internal/handlers/panel"
	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/counting"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
	"github.com/KirkDiggler/initiative-tracker/internal/services/zipper"
)

func main() {
	// Load optional .env, environment wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	itemRepo, err := itemsRepo.NewRedis(&itemsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create items repository: %v", err)
	}

	metaRepo, err := metadataRepo.NewRedis(&metadataRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create metadata repository: %v", err)
	}

	// Initialize the spotlight side channel
	spotlightSvc, err := spotlight.New(&spotlight.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create spotlight service: %v", err)
	}

	// Initialize sequencers
	countingSvc, err := counting.New(&counting.Config{
		ItemRepo:     itemRepo,
		MetadataRepo: metaRepo,
		Spotlight:    spotlightSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create counting sequencer: %v", err)
	}

	zipperSvc, err := zipper.New(&zipper.Config{
		ItemRepo:     itemRepo,
		MetadataRepo: metaRepo,
		Spotlight:    spotlightSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create zipper sequencer: %v", err)
	}

	// Initialize the panel handler
	handler, err := panel.New(&panel.Config{
		CountingService: countingSvc,
		ZipperService:   zipperSvc,
		ItemRepo:        itemRepo,
		MetadataRepo:    metaRepo,
		Spotlight:       spotlightSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create panel handler: %v", err)
	}

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: handler,
	}

	go func() {
		log.Printf("Initiative tracker listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Tracker has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
