package server

import (
	"errors"
	"slices"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/storage/redis/v3"
	"go.uber.org/zap"

	"atsmatch/internal/config"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
	log *zap.Logger
}

// newCORSConfig allows any origin without credentials unless an explicit
// origin list is configured. Credentials are never combined with "*".
func newCORSConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		MaxAge:       86400,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = !slices.Contains(origins, "*")
	}
	return cfg
}

// New creates a new server with middleware configured.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:   "atsmatch",
		BodyLimit: cfg.BodyLimit(),
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			} else {
				log.Error("unhandled request error", zap.String("path", c.Path()), zap.Error(err))
			}

			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())

	app.Use(cors.New(newCORSConfig(cfg.AllowedOrigins())))

	// Rate limiting middleware - RATE_LIMIT_PER_MINUTE requests per IP
	limiterConfig := limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "Rate limit exceeded. Please try again later.",
			})
		},
	}
	if cfg.RedisURL != "" {
		// Shared counters across replicas
		limiterConfig.Storage = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Info("rate limiter using redis storage")
	}
	app.Use(limiter.New(limiterConfig))

	return &Server{
		App: app,
		Cfg: cfg,
		log: log,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	s.log.Info("server listening", zap.String("addr", s.Cfg.ServerAddr))
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
