package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/viktorgkw/AuthTemplate/docs"
	"github.com/viktorgkw/AuthTemplate/internal/api/handler"
	"github.com/viktorgkw/AuthTemplate/internal/api/middleware"
	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/core/service"
	"github.com/viktorgkw/AuthTemplate/internal/infrastructure/config"
	mongostore "github.com/viktorgkw/AuthTemplate/internal/infrastructure/db/mongo"
	redisstore "github.com/viktorgkw/AuthTemplate/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Fails when the token issuer cannot be constructed (missing secret).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	var lockout mongostore.Lockout
	if cfg.Lockout.Enabled {
		lockout = redisstore.NewLockoutTracker(rdb,
			cfg.Lockout.MaxFailedAttempts,
			time.Duration(cfg.Lockout.WindowMinutes)*time.Minute)
	}

	store := mongostore.NewUserStore(db, mongostore.PasswordPolicy{
		RequireDigit:           cfg.Password.RequireDigit,
		RequireLowercase:       cfg.Password.RequireLowercase,
		RequireUppercase:       cfg.Password.RequireUppercase,
		RequireNonAlphanumeric: cfg.Password.RequireNonAlphanumeric,
		RequiredLength:         cfg.Password.RequiredLength,
		RequiredUniqueChars:    cfg.Password.RequiredUniqueChars,
	}, lockout)

	issuer, err := service.NewTokenIssuer(service.SigningConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ValidHours: cfg.JWT.ValidHours,
	})
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(store, issuer, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(store)
	authMiddleware := middleware.Auth(cfg.JWT.Secret)

	// --- Identity routes ---
	e.POST("/identity/register", authHandler.Register)
	e.POST("/identity/login", authHandler.Login)
	e.GET("/identity/me", authHandler.Me, authMiddleware)
	e.GET("/identity/users/:email", userHandler.GetByEmail,
		authMiddleware, middleware.RBAC(domain.RoleAdministrator))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Telemetry & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
