package controller

import (
	"encoding/json"
	"errors"

	"github.com/benbeisheim/chessquito/internal/model"
	"github.com/benbeisheim/chessquito/internal/service"
	"github.com/benbeisheim/chessquito/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	gameService *service.GameService
	log         *zap.SugaredLogger
}

func NewWebSocketController(gameService *service.GameService, log *zap.SugaredLogger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// HandleConnection streams a game's state to one spectator until the
// connection closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	spectatorID, _ := c.Locals("spectatorID").(string)
	log := wsc.log.With("game", gameID, "spectator", spectatorID)

	conn := model.NewSpectatorConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, spectatorID, conn); err != nil {
		log.Warnw("failed to register connection", "error", err)
		reason := "could not watch game"
		if errors.Is(err, model.ErrAlreadyConnected) {
			reason = "Connection already exists"
		}
		c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, spectatorID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugw("read error", "error", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugw("parse error", "error", err)
			continue
		}
		if err := wsc.handleMessage(conn, msg); err != nil {
			log.Debugw("handle error", "error", err)
			wsc.sendError(conn, err.Error())
		}
	}
}

// handleMessage answers one spectator message. Replies go through conn so they
// never overlap with game broadcasts.
func (wsc *WebSocketController) handleMessage(c model.Connection, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypePing:
		return c.WriteJSON(ws.Message{Type: ws.MessageTypePong})
	default:
		return errors.New("spectators can only send ping messages, got " + string(msg.Type))
	}
}

func (wsc *WebSocketController) sendError(c model.Connection, errorMsg string) {
	payload, _ := json.Marshal(errorMsg)
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}
