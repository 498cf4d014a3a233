package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/config"
	"github.com/planwise/seatplanner/internal/database"
	"github.com/planwise/seatplanner/internal/handler"
	"github.com/planwise/seatplanner/internal/middleware"
	"github.com/planwise/seatplanner/internal/queue"
	"github.com/planwise/seatplanner/internal/repository"
	"github.com/planwise/seatplanner/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis backs rate limiting and the plan response cache. A nil
	// client disables both without blocking startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	events := repository.NewEventRepo(db)
	guests := repository.NewGuestRepo(db)
	constraints := repository.NewConstraintRepo(db)
	plans := repository.NewPlanRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	plannerHandler := handler.NewPlannerHandler(events, guests, constraints, plans, cfg.MaxIterations)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPlanner(e, plannerHandler, cfg.JWTSecret, cacheMW)

	// The consumer reconnects forever; run it alongside the server.
	go func() {
		if err := queue.StartPlanConsumer(); err != nil {
			log.Printf("plan consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
