// @title         scholarship-service API
// @version       1.0
// @description   Matches student profiles against a scholarship catalog and serves the catalog for browsing.
// @BasePath      /api
// @schemes       http
// @host          localhost:5002
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Accepts "Bearer <JWT>" or a bare "<JWT>".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/artem13815/scholarship/docs"

	// internal imports
	"github.com/artem13815/scholarship/api/http"
	"github.com/artem13815/scholarship/api/http/handlers"
	"github.com/artem13815/scholarship/api/http/middleware"
	"github.com/artem13815/scholarship/pkg/auth"
	"github.com/artem13815/scholarship/pkg/bootstrap"
	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/config"
	"github.com/artem13815/scholarship/pkg/health"
	"github.com/artem13815/scholarship/pkg/logger"
	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/ratelimit"
	"github.com/artem13815/scholarship/pkg/recommend"
	"github.com/artem13815/scholarship/pkg/scheduler"
	"github.com/artem13815/scholarship/pkg/security/jwt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from env/.env
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init catalog store: %w", err)
	}
	defer stores.Close()

	source, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load seed list: %w", err)
	}
	scholarshipUC := recommend.NewService(stores.Repo, matching.NewScorer(matching.RuntimeSource()), source)
	if cfg.SeedOnStart {
		n, err := scholarshipUC.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("catalog seeded", zap.Int("count", n))
	}

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(auth.NewStaticAdmin(cfg.AdminEmail, cfg.AdminPasswordHash), jwtGen)
	if cfg.AdminEmail == "" {
		log.Warn("ADMIN_EMAIL not set, administrative routes are unreachable")
	}

	// Without Redis, /api/match is not throttled.
	var matchLimit fiber.Handler
	if stores.Redis != nil {
		limiter := ratelimit.NewRedisLimiter(stores.Redis, cfg.MatchRateLimit, cfg.MatchRateWindow, "ratelimit:match")
		matchLimit = middleware.RateLimit(limiter)
	}

	app := fiber.New(fiber.Config{
		AppName:               "scholarship-service",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		},
	})
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	// Register routes
	http.Register(app, http.Routes{
		Auth:        handlers.NewAuthHandler(authUC),
		Health:      handlers.NewHealthHandler(health.NewService(stores.Checkers...), log, 0),
		Scholarship: handlers.NewScholarshipHandler(scholarshipUC, log.Named("http")),
		AuthMW:      jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		AdminMW:     jwt.RequireAdmin(),
		MatchLimit:  matchLimit,
	})

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.ShutdownWithTimeout(5 * time.Second)
	})
	if stores.Cache != nil {
		g.Go(func() error {
			return scheduler.New(stores.Cache, cfg.CacheRefreshSpec, log.Named("scheduler")).Run(gctx)
		})
	}
	return g.Wait()
}
