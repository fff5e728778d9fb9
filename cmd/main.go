package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "seasonal_calc/docs"
	"seasonal_calc/internal/handlers"
	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/remote"
	"seasonal_calc/internal/repository"
	"seasonal_calc/internal/repository/db"
	"seasonal_calc/internal/server"
	"seasonal_calc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; its values act as SEASONAL_* overrides
	_ = godotenv.Load()

	cfg, err := loadConfig("configs")
	if err != nil {
		logger.Get(logger.Config{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(logger.Config{Level: cfg.LogLvl, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	// open DB
	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalw("invalid timezone", "err", err)
	}

	// wire dependencies
	opts := service.Options{
		Location:      loc,
		CountdownTick: cfg.CountdownTick,
		Log:           log,
	}
	if cfg.RemoteURL != "" {
		opts.Remote = remote.New(cfg.RemoteURL, cfg.RemoteTimeout,
			remote.WithCacheTTL(cfg.RemoteCacheTTL),
			remote.WithLogger(log),
		)
		log.Infow("remote estimate enabled", "url", cfg.RemoteURL, "timeout", cfg.RemoteTimeout)
	} else {
		log.Infow("remote estimate disabled; using local formula")
	}

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, opts)
	apiHandler := handlers.NewHandler(services, log, handlers.WithCORSOrigins(cfg.AllowedOrigins))

	// start HTTP server
	srv := server.New(server.Config{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(services, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(services *service.Service, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the countdown goroutine
	services.Countdown.Cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
