package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/interface/gql"
	"github.com/wichananm65/social-backend/internal/interface/http/handler"
	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

// Options tunes the HTTP surface.
type Options struct {
	CORSOrigins       string
	SubscriptionDepth int
	Logger            *zap.Logger
}

// New builds the fiber app serving both the REST routes and POST /graphql
// over the same facade.
func New(f *usecase.Facade, opts Options) (*fiber.App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "social-backend",
		DisableStartupMessage: true,
		// Params and body strings outlive the request once stored.
		Immutable:             true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return presenter.Error(c, err)
		},
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestLogger(logger.Named("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.NewUserHandler(f.Users).RegisterRoutes(app)
	handler.NewProfileHandler(f.Profiles).RegisterRoutes(app)
	handler.NewPostHandler(f.Posts).RegisterRoutes(app)
	handler.NewMemberTypeHandler(f.MemberTypes).RegisterRoutes(app)

	graphqlHandler, err := gql.NewHandler(f, opts.SubscriptionDepth, logger.Named("graphql"))
	if err != nil {
		return nil, err
	}
	graphqlHandler.RegisterRoutes(app)

	return app, nil
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Info("request", fields...)
		return err
	}
}
