package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/barberia-app/booking-api/internal/config"
	dbpkg "github.com/barberia-app/booking-api/internal/db"
	"github.com/barberia-app/booking-api/internal/maintenance"
	"github.com/barberia-app/booking-api/internal/middleware"
	"github.com/barberia-app/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, rate limiting fails open: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reconciler := routes.RegisterRoutes(r, db, rdb, cfg)

	scheduler := maintenance.NewScheduler(reconciler, cfg.MaintenanceInterval)
	scheduler.Start(context.Background())

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
