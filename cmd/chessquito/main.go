package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benbeisheim/chessquito/internal/config"
	"github.com/benbeisheim/chessquito/internal/console"
	"github.com/benbeisheim/chessquito/internal/logger"
	"github.com/benbeisheim/chessquito/internal/model"
	"github.com/benbeisheim/chessquito/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			os.Exit(255)
		}
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(stop(run(cfg, os.Stdin, os.Stdout, log), log))
}

// stop logs err and flushes the log, which os.Exit would skip, then returns
// the exit code.
func stop(err error, log *zap.SugaredLogger) int {
	code := 0
	if err != nil {
		log.Errorw("chessquito stopped", "error", err)
		code = 1
	}
	log.Sync()
	return code
}

// run plays one game on the console, serving it to spectators while it lasts
// when an HTTP address is configured.
func run(cfg *config.Config, stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger) error {
	gameManager := service.NewGameManager(log)
	game := gameManager.CreateGame(model.ChessquitoSize)
	defer gameManager.RemoveGame(game.ID)

	if cfg.HTTPAddr != "" {
		app := newApp(service.NewGameService(gameManager), cfg, log)
		go func() {
			if err := app.Listen(cfg.HTTPAddr); err != nil {
				log.Errorw("spectator server stopped", "addr", cfg.HTTPAddr, "error", err)
			}
		}()
		defer func() {
			if err := app.Shutdown(); err != nil {
				log.Warnw("shutting down spectator server", "error", err)
			}
		}()
		log.Infow("spectator server listening", "addr", cfg.HTTPAddr)
		fmt.Fprintf(stdout, "Spectators can follow game %s on %s\n", game.ID, cfg.HTTPAddr)
	}

	c := console.New(console.NewKeyboard(stdin), stdout, log)
	winner, err := c.Play(game)
	if err != nil {
		return fmt.Errorf("playing game %s: %w", game.ID, err)
	}
	log.Infow("game won", "game", game.ID, "winner", winner)
	return nil
}
