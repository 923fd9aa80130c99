package service

import (
	"github.com/benbeisheim/chessquito/internal/model"
)

// GameService is what the controllers see of the running games.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, spectatorID string, conn model.Connection) error {
	return gs.gameManager.RegisterConnection(gameID, spectatorID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, spectatorID string, conn model.Connection) {
	gs.gameManager.UnregisterConnection(gameID, spectatorID, conn)
}
