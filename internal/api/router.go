package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/catalogo/catalog-api/internal/api/handler"
	"github.com/catalogo/catalog-api/internal/api/middleware"
	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
)

// Deps groups everything the router needs to build its handlers.
type Deps struct {
	Customers ports.CustomerService
	Products  ports.ProductService
	Tokens    ports.TokenService
	Validator ports.EntityValidator
	Checks    map[string]handler.PingFunc
	Logger    zerolog.Logger
	// Registry receives the HTTP request metrics and backs /metrics.
	// Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(deps.Validator)
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))

	// --- Handlers ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	productHandler := handler.NewProductHandler(deps.Products)
	authHandler := handler.NewAuthHandler(deps.Customers)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	// --- Public routes ---
	e.POST("/customers", customerHandler.Create)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	secured := []echo.MiddlewareFunc{
		middleware.Auth(deps.Tokens),
		middleware.RequireRole(deps.Logger, domain.RoleAdmin, domain.RoleUser),
	}

	customers := e.Group("/customers", secured...)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.GET("/email/:email", customerHandler.GetByEmail)
	customers.GET("/tax-id/:taxId", customerHandler.GetByTaxID)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	products := e.Group("/products", secured...)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	return e
}

// requestLogger writes one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "catalog"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
