package main

import (
	"errors"
	"flag"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

func main() {
	steps := flag.Int("steps", 0, "number of migrations to roll back with down (0 = all)")
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	m, err := database.NewMigrator(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			l.Info("No migrations applied")
			return
		}
		if verr != nil {
			l.Fatal("Failed to read migration version", zap.Error(verr))
		}
		l.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	default:
		l.Fatal("Unknown command, expected up, down or version", zap.String("command", command))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		l.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
	l.Info("Migrations complete", zap.String("command", command))
}
