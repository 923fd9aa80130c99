package controller

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/benbeisheim/chessquito/internal/model"
	"github.com/benbeisheim/chessquito/internal/service"
	"github.com/benbeisheim/chessquito/internal/ws"
	"go.uber.org/zap"
)

type recordingConnection struct {
	mu       sync.Mutex
	messages []ws.Message
}

func (c *recordingConnection) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *recordingConnection) Close() error {
	return nil
}

func TestHandleMessage(t *testing.T) {
	log := zap.NewNop().Sugar()
	wsc := NewWebSocketController(service.NewGameService(service.NewGameManager(log)), log)

	handleMessageTests := []struct {
		msg      ws.Message
		wantOk   bool
		wantType ws.MessageType
	}{
		{
			msg:      ws.Message{Type: ws.MessageTypePing},
			wantOk:   true,
			wantType: ws.MessageTypePong,
		},
		{
			msg:      ws.Message{Type: "move", Payload: json.RawMessage(`{"from":{"x":0,"y":3}}`)},
			wantType: ws.MessageTypeError,
		},
	}
	for i, test := range handleMessageTests {
		rc := new(recordingConnection)
		conn := model.NewSpectatorConn(rc)
		if err := wsc.handleMessage(conn, test.msg); err != nil {
			if test.wantOk {
				t.Errorf("Test %v: unwanted error: %v", i, err)
				continue
			}
			wsc.sendError(conn, err.Error())
		} else if !test.wantOk {
			t.Errorf("Test %v: wanted error", i)
			continue
		}
		switch {
		case len(rc.messages) != 1:
			t.Errorf("Test %v: wanted one reply, got %v", i, len(rc.messages))
		case rc.messages[0].Type != test.wantType:
			t.Errorf("Test %v: wanted %v reply, got %v", i, test.wantType, rc.messages[0].Type)
		}
	}
}
