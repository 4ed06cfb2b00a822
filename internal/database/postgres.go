package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq"
	"github.com/themizzi/swagtest/internal/config"
)

// ConnectTimeout bounds how long Connect waits for the server to accept connections.
var ConnectTimeout = 15 * time.Second

// Connect opens a pool to the order database and waits until it answers a ping.
func Connect(cfg *config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// A freshly started container refuses connections for a few seconds
	ping := func() (struct{}, error) {
		return struct{}{}, db.Ping()
	}
	_, err = backoff.Retry(context.Background(), ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(ConnectTimeout),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	return db, nil
}
