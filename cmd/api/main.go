package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/logging"
	"github.com/iamasit07/connect4-engine/internal/service/cleanup"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-engine/internal/transport/websocket"
	"github.com/iamasit07/connect4-engine/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	log := logging.Setup(os.Stdout, cfg.LogLevel)
	if envErr != nil {
		log.Info().Msg("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Services
	connManager := websocket.NewConnectionManager()
	sessionManager := game.NewSessionManager(websocket.NewPresenterFactory(connManager, log), log)
	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTokenTTL)

	// Background workers
	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.SessionIdleTimeout, log)
	go cleanupWorker.Start(ctx)

	// Handlers
	sessionHandler := transportHttp.NewSessionHandler(sessionManager, tokens, log)
	wsHandler := websocket.NewHandler(connManager, sessionManager, tokens, cfg.AllowedOrigins, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	sessionHandler.RegisterRoutes(router)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
