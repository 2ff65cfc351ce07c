package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/auth"
	"github.com/laibam4/reelico/internal/config"
	"github.com/laibam4/reelico/internal/database"
	"github.com/laibam4/reelico/internal/handlers"
	"github.com/laibam4/reelico/internal/middleware"
	"github.com/laibam4/reelico/internal/repository"
	"github.com/laibam4/reelico/internal/routes"
	"github.com/laibam4/reelico/internal/services"
	"github.com/laibam4/reelico/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()
	sugar.Infof("Starting reelico in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	// Blob store is optional: without a bucket the catalog keeps serving
	// reads while upload/stream answer 503.
	var store storage.BlobStore
	if cfg.AWS.Bucket != "" {
		s3store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint)
		if err != nil {
			sugar.Fatalf("s3 init: %v", err)
		}
		store = s3store
	} else {
		sugar.Warn("S3_BUCKET not set; upload and stream endpoints disabled")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sugar)
		if err != nil {
			sugar.Fatal(err)
		}
	} else {
		sugar.Warn("REDIS_ADDR not set; upload rate limiting disabled")
	}

	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL)
	if err != nil {
		sugar.Fatalf("jwt init: %v", err)
	}

	videoRepo := repository.NewMongoVideoRepo(db, cfg.Mongo.Collection)
	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UserCol)

	videoSvc := services.NewVideoService(videoRepo, store, sugar)
	authSvc := services.NewAuthService(userRepo, tokens, sugar)

	vh := handlers.NewVideoHandler(videoSvc, sugar)
	ah := handlers.NewAuthHandler(authSvc, sugar)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    512 * 1024 * 1024,
	})
	app.Use(middleware.Recovery(sugar))
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logger))

	limiter := middleware.NewRateLimiter(rdb, "upload_rate", cfg.RateLimit.Limit, cfg.RateLimitWindow)
	routes.Setup(app, ah, vh,
		middleware.JWTAuth(tokens, sugar),
		limiter.MiddlewareByKey(func(c *fiber.Ctx) string {
			if id, ok := c.Locals(middleware.UserIDKey).(string); ok {
				return id
			}
			return c.IP()
		}),
	)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		sugar.Infof("Server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			sugar.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		sugar.Errorf("Fiber app shutdown error: %v", err)
	}
	if err := mongoClient.Disconnect(ctxShut); err != nil {
		sugar.Errorf("MongoDB disconnect error: %v", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			sugar.Errorf("Redis client close error: %v", err)
		}
	}
	sugar.Info("Graceful shutdown complete")
}
