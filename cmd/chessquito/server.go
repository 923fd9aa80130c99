package main

import (
	"strings"

	"github.com/benbeisheim/chessquito/internal/config"
	"github.com/benbeisheim/chessquito/internal/controller"
	"github.com/benbeisheim/chessquito/internal/middleware"
	"github.com/benbeisheim/chessquito/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// newApp builds the read-only spectator server.
func newApp(gameService *service.GameService, cfg *config.Config, log *zap.SugaredLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // stdout belongs to the console game
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Spectator-ID",
		AllowMethods: "GET, OPTIONS",
	}))
	app.Use(func(c *fiber.Ctx) error {
		log.Debugw("incoming request", "path", c.Path(), "method", c.Method())
		return c.Next()
	})

	gameController := controller.NewGameController(gameService, log)
	wsController := controller.NewWebSocketController(gameService, log)

	app.Use("/ws/*", middleware.EnsureSpectatorID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         strings.Split(cfg.CORSOrigins, ","),
	}))

	api := app.Group("/api", middleware.EnsureSpectatorID())
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gameController.ListGames)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	return app
}
