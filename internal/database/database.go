package database

import (
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DriverName is the database/sql driver registered by pgx's stdlib package.
const DriverName = "pgx"

// NewSQLXPostgresDB opens and pings a PostgreSQL connection pool.
func NewSQLXPostgresDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}

	logger.Get().Info("Successfully connected to PostgreSQL database",
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("database", cfg.DB.DBName),
	)
	return db, nil
}
