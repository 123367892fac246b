package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "github.com/catalogo/catalog-api/docs"
	"github.com/catalogo/catalog-api/internal/api"
	"github.com/catalogo/catalog-api/internal/core/service"
	"github.com/catalogo/catalog-api/internal/infrastructure/crypto"
	"github.com/catalogo/catalog-api/internal/infrastructure/queue"
	"github.com/catalogo/catalog-api/internal/infrastructure/validation"
	"github.com/catalogo/catalog-api/internal/pkg/config"
	"github.com/catalogo/catalog-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title                       Catalog API
// @version                     1.0
// @description                 Customer accounts, bearer-token sessions and per-owner product listings.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "catalog-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("service stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close(context.Background(), log)

	hasher, err := crypto.NewHasher(cfg.Hash.Algorithm, cfg.Hash.BcryptCost)
	if err != nil {
		return err
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		// Only reachable in development; tokens die with the process.
		secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET not set, using an ephemeral signing key")
	}

	validator := validation.New()
	tokens := service.NewTokenService(b.tokens, service.TokenConfig{
		Secret:   secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	}, log)

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, b.audit, log)
	customers := service.NewCustomerService(b.customers, validator, hasher, tokens, dispatcher, log)
	products := service.NewProductService(b.products, validator, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Customers: customers,
		Products:  products,
		Tokens:    tokens,
		Validator: validator,
		Checks:    b.checks,
		Logger:    log,
	})

	// The dispatcher outlives the HTTP server so in-flight requests can still
	// record audit events while draining.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	defer stopAudit()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dispatcher.Start(auditCtx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		defer stopAudit()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
