package service

import (
	"errors"
	"sort"
	"sync"

	"github.com/benbeisheim/chessquito/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager keeps the running games by id.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
	log   *zap.SugaredLogger
}

func NewGameManager(log *zap.SugaredLogger) *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
		log:   log,
	}
}

// CreateGame starts a game on a size×size board under a fresh id.
func (gm *GameManager) CreateGame(size int) *model.Game {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	game := model.NewGame(gameID, size, gm.log)
	gm.games[gameID] = game
	gm.log.Infow("game created", "game", gameID, "size", size)
	return game
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.games, gameID)
}

// GameIDs returns the ids of all games, sorted.
func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := make([]string, 0, len(gm.games))
	for id := range gm.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, spectatorID string, conn model.Connection) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(spectatorID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, spectatorID string, conn model.Connection) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(spectatorID, conn)
}
