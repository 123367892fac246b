package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/catalogo/catalog-api/internal/api/handler"
	"github.com/catalogo/catalog-api/internal/core/ports"
	"github.com/catalogo/catalog-api/internal/infrastructure/db/memory"
	mongodb "github.com/catalogo/catalog-api/internal/infrastructure/db/mongo"
	"github.com/catalogo/catalog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/catalogo/catalog-api/internal/infrastructure/db/redis"
	"github.com/catalogo/catalog-api/internal/pkg/config"
)

// backends holds the storage adapters selected by configuration together
// with their readiness checks and shutdown hooks.
type backends struct {
	customers ports.CustomerRepository
	products  ports.ProductRepository
	audit     ports.AuditRepository
	tokens    ports.TokenStore

	checks  map[string]handler.PingFunc
	closers []func(context.Context) error
}

func (b *backends) close(ctx context.Context, log zerolog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("backend close failed")
		}
	}
}

func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{checks: make(map[string]handler.PingFunc)}

	if err := b.openRepositories(ctx, cfg, log); err != nil {
		b.close(ctx, log)
		return nil, err
	}
	if err := b.openTokenStore(ctx, cfg); err != nil {
		b.close(ctx, log)
		return nil, err
	}

	log.Info().
		Str("storage", cfg.StorageDriver).
		Str("token_store", cfg.TokenStore).
		Msg("backends ready")
	return b, nil
}

func (b *backends) openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, client.Disconnect)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		b.customers = mongodb.NewCustomerRepository(db)
		b.products = mongodb.NewProductRepository(db)
		b.audit = mongodb.NewAuditRepository(db)
		b.checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres.DSN, log)
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		b.customers = postgres.NewCustomerRepository(db)
		b.products = postgres.NewProductRepository(db)
		b.audit = postgres.NewAuditRepository(db)
		b.checks["postgres"] = func(ctx context.Context) error { return postgres.Ping(ctx, db) }

	case config.DriverMemory:
		b.customers = memory.NewCustomerRepository()
		b.products = memory.NewProductRepository()
		b.audit = memory.NewAuditRepository()

	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	return nil
}

func (b *backends) openTokenStore(ctx context.Context, cfg *config.Config) error {
	switch cfg.TokenStore {
	case config.TokenStoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		b.tokens = redisdb.NewTokenStore(client)
		b.checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }

	case config.TokenStoreMemory:
		b.tokens = memory.NewTokenStore()

	default:
		return fmt.Errorf("unsupported token store %q", cfg.TokenStore)
	}
	return nil
}
