package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sigeho_backend/internals/configs"
	database "sigeho_backend/internals/databases"
	scheduler "sigeho_backend/internals/features/asistencia/scheduler"
	middlewares "sigeho_backend/internals/middlewares"
	routes "sigeho_backend/internals/route"
	seeds "sigeho_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	logger, err := configs.NewLogger()
	if err != nil {
		log.Fatalf("no se pudo inicializar el logger: %v", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timeout alineado con el statement_timeout de la BD
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			zap.String("reqid", id),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.Migrate()

	if os.Getenv("RUN_SEEDS") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	// el barrido necesita la BD lista
	scheduler.StartBarridoAusencias(database.DB, logger)

	routes.BaseRoutes(app, database.DB)
	routes.SetupRoutes(app, database.DB, logger)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		logger.Info("servidor escuchando", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logger.Fatal("error del servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
