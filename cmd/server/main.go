package main

import (
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"driveconn/app/apperror"
	"driveconn/app/auth"
	"driveconn/app/config"
	"driveconn/app/database"
	"driveconn/app/handlers"
	"driveconn/app/mail"
	"driveconn/app/metrics"
	"driveconn/app/middleware"
	"driveconn/app/observability/logger"
	"driveconn/app/platform/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(logger.Config{Env: cfg.Environment, Level: cfg.LogLevel})
	defer logger.Sync()
	log := logger.Named("server")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	users := user.NewService(db)
	mailer := mail.NewMailer(cfg)
	throttle := auth.NewLoginThrottle()
	collector := metrics.NewCollector()

	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.Handler,
	})

	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET, POST, OPTIONS, PUT, PATCH, DELETE",
		AllowHeaders:     "X-Requested-With, Content-Type, Authorization",
		AllowCredentials: true,
	}))
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("users", user.Store(users))
		c.Locals("mailer", mailer)
		c.Locals("throttle", throttle)
		c.Locals("metrics", collector)
		return c.Next()
	})

	app.Post("/register", handlers.Register)
	app.Post("/login", middleware.LoginLimiter, handlers.Login)
	app.Post("/forgotPassword", handlers.ForgotPassword)
	app.Post("/resetPassword", handlers.ResetPassword)

	app.Get("/me", middleware.AuthMiddleware, handlers.GetCurrentUser)

	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	diag := app.Group("/diag")
	diag.Get("/ip", handlers.GetClientAddress)
	diag.Get("/headers", handlers.GetHeaders)

	app.Static("/", "./public")

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	log.Info("server listening", zap.Int("port", cfg.ServerPort))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
