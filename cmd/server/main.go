package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monateg/config"
	"monateg/internal/cache"
	"monateg/internal/database"
	"monateg/internal/router"
	"monateg/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}
	cfg := config.Load()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedRewardConfig(db); err != nil {
		log.Fatalf("seed reward config: %v", err)
	}

	rewardCache := cache.NewRewardConfigCache(&cfg.Redis)
	if rewardCache != nil {
		log.Printf("[Cache] reward-config caching enabled (%s)", cfg.Redis.Addr)
	} else {
		log.Printf("[Cache] reward-config caching disabled: set REDIS_ADDR to enable")
	}

	sched, err := service.StartDailyResetScheduler(db)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	engine := router.Setup(cfg, db, rewardCache)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	_ = sched.Shutdown()
	_ = rewardCache.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("server stopped")
}
