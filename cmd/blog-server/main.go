package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogforge/blog-service/handlers"
	"github.com/blogforge/blog-service/internal/config"
	"github.com/blogforge/blog-service/internal/database"
	"github.com/blogforge/blog-service/internal/post/handler"
	"github.com/blogforge/blog-service/internal/post/repository"
	"github.com/blogforge/blog-service/internal/post/service"
	"github.com/blogforge/blog-service/pkg/logger"
	"github.com/blogforge/blog-service/pkg/metrics"
	"github.com/blogforge/blog-service/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Server.LogLevel)

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())

	// Lightweight CORS for dev/test; production sits behind a stricter proxy.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rc := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
				Password: cfg.Redis.Password,
			})
			if err := rc.Ping(context.Background()).Err(); err != nil {
				logger.Warnf("redis unavailable (%v); using in-memory rate limiter", err)
				r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			} else {
				win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
				r.Use(middleware.RedisRateLimit(rc, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			}
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if err != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database(cfg.MongoDB.Database).Collection("posts")
	svc := service.New(repository.NewMongoRepo(col))
	handler.RegisterPostRoutes(r, svc)

	handlers.RegisterHealth(r, client)
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("blog service listening on %s (env=%s db=%s)", addr, cfg.Server.Environment, cfg.MongoDB.Database)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
