package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/configs"
	"github.com/Rikoze777/menu-api/pkg/cache"
	"github.com/Rikoze777/menu-api/routes"
	"github.com/Rikoze777/menu-api/services"
	"github.com/Rikoze777/menu-api/tasks"
)

func main() {
	cfg := configs.LoadConfig()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	// Cache + background invalidation worker
	cacheCfg := cache.DefaultConfig()
	cacheCfg.Capacity = cfg.CacheCapacity
	cacheCfg.TTL = cfg.CacheTTL
	store, err := cache.New(cacheCfg)
	if err != nil {
		log.Fatal("init cache", zap.Error(err))
	}
	inv := services.NewInvalidator(store, log)
	defer inv.Close()

	// Workbook reconciliation schedule
	sched := cron.New()
	syncer := tasks.NewSyncer(db, store, log, cfg.Workbook, cfg.WorkbookHash)
	if _, err := sched.AddJob(cfg.SyncSchedule, syncer); err != nil {
		log.Fatal("schedule workbook sync", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, store, inv, log)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
