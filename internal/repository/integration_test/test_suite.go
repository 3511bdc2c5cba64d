package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	initOnce        sync.Once
)

func initConn() {
	initOnce.Do(func() {
		// .env.test is loaded by the Makefile, not here
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	initConn()
	return querierInstance
}

// GetPool exposes the raw pool for tests that run their own transaction
// manager on top of it.
func GetPool() *pgxpool.Pool {
	initConn()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders, shipping_rates, products, user_addresses, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
