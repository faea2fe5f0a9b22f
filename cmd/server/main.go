package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"campuschat/config"
	chatrepo "campuschat/internal/chat/repository"
	chatuc "campuschat/internal/chat/usecase"
	"campuschat/internal/gateway"
	"campuschat/internal/handlers"
	userrepo "campuschat/internal/user/repository"
	"campuschat/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		appLogger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	chatRepository := chatrepo.NewChatRepository(db, *appLogger)
	userRepository := userrepo.NewUserRepository(db, *appLogger)
	if err := userRepository.InitSchema(ctx); err != nil {
		appLogger.Error("failed to init user schema", "err", err)
		os.Exit(1)
	}
	if err := chatRepository.InitSchema(ctx); err != nil {
		appLogger.Error("failed to init chat schema", "err", err)
		os.Exit(1)
	}

	conversations := chatuc.NewConversationService(chatRepository, userRepository, *appLogger, *cfg)
	hub := gateway.NewHub(conversations, *appLogger)

	if cfg.Nats.URL != "" {
		relay, err := gateway.NewRelay(cfg.Nats.URL, hub, *appLogger)
		if err != nil {
			appLogger.Error("failed to start relay", "url", cfg.Nats.URL, "err", err)
			os.Exit(1)
		}
		defer relay.Close()
		appLogger.Info("relay connected", "url", cfg.Nats.URL)
	}

	h := handlers.NewChatHandlers(conversations, hub, *appLogger)

	app := fiber.New()
	app.Use(fiberlogger.New())

	api := app.Group("/api", handlers.AuthRequired(*cfg))
	api.Get("/conversations", h.ListConversations)
	api.Get("/conversations/:id", h.OpenConversation)
	api.Post("/conversations/with/:userID", h.StartConversation)

	api.Use("/ws", handlers.UpgradeGuard)
	api.Get("/ws", websocket.New(h.Websocket))

	go func() {
		appLogger.Info("server starting", "port", cfg.Server.Port)
		if err := app.Listen(cfg.Server.Port); err != nil {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("error during shutdown", "err", err)
	}
}
