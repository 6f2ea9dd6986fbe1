package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/trivia.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("categories_loaded", len(seedCategories)))

	s := &seeder{
		tm:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}
	stats, seedErr := s.seedAll(ctx, seedCategories)

	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("Could not reach Redis to invalidate the category cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			categorySvc := service.NewCategoryService(nil, adapter.NewRedisCacheAdapter(redisClient), 0)
			if err := categorySvc.InvalidateCategoryCache(ctx); err != nil {
				log.Warn("Failed to invalidate category cache", zap.Error(err))
			}
		}
	}

	log.Info("Initial data seeding process completed",
		zap.Int("categories_created", stats.CategoriesCreated),
		zap.Int("questions_created", stats.QuestionsCreated),
		zap.Int("questions_skipped", stats.QuestionsSkipped))
	if seedErr != nil {
		log.Fatal("Seeding finished with errors", zap.Error(seedErr))
	}
}
