// File: roomboard/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomboard/config"
	"roomboard/handlers"
	"roomboard/middleware"
	"roomboard/routes"
	"roomboard/services/animator"
	"roomboard/services/feed"
	"roomboard/services/schedule"
	"roomboard/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSnapshotCache()

	zone, err := time.LoadLocation(config.AppConfig.DisplayTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid display timezone %q: %v", config.AppConfig.DisplayTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Feed: upstream client, snapshot store, poller.
	store := feed.NewStore()
	client := feed.NewClient(
		config.AppConfig.RoomAPIBaseURL,
		time.Duration(config.AppConfig.FetchTimeoutSeconds)*time.Second,
	)
	poller := &feed.Poller{
		Client:   client,
		Store:    store,
		Cache:    utils.GetSnapshotCacheClient(),
		Interval: time.Duration(config.AppConfig.PollIntervalMinutes) * time.Minute,
		Timeout:  time.Duration(config.AppConfig.FetchTimeoutSeconds) * time.Second,
		Logger:   logger,
	}

	// Board service: overlap engine, grid layout, now-indicator.
	boardService := &schedule.DefaultBoardService{
		Window: schedule.Window{
			StartHour: config.AppConfig.DisplayStartHour,
			SlotCount: config.AppConfig.DisplaySlotCount,
		},
		Clock:  schedule.SystemClock(),
		Zone:   zone,
		Logger: logger,
	}

	// Decorative animations over the currently visible blocks.
	anim := animator.New(
		func() []string { return boardService.VisibleBlockKeys(store.Current()) },
		time.Duration(config.AppConfig.AnimationCycleMs)*time.Millisecond,
		time.Duration(config.AppConfig.AnimationDecayMs)*time.Millisecond,
		logger,
	)

	boardHandler := handlers.NewBoardHandler(store, boardService, anim)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetGridHandler:       boardHandler.GetGridHandler,
		GetNowHandler:        boardHandler.GetNowHandler,
		GetSnapshotHandler:   boardHandler.GetSnapshotHandler,
		GetAnimationsHandler: boardHandler.GetAnimationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background loops stop when the root context is cancelled at shutdown.
	rootCtx, stopBackground := context.WithCancel(context.Background())
	poller.SeedFromCache(rootCtx)
	go poller.Run(rootCtx)
	go anim.Run(rootCtx)
	utils.StartHealthMonitor(utils.GetSnapshotCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
