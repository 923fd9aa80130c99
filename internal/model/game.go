package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessquito/internal/ws"
	"go.uber.org/zap"
)

var (
	ErrOutOfBoard       = errors.New("position is outside the board")
	ErrOccupied         = errors.New("square is already occupied")
	ErrNotOwnHalf       = errors.New("square is not on the player's half of the board")
	ErrNotPlacing       = errors.New("game is not in the placement phase")
	ErrNotPlaying       = errors.New("game is not in the movement phase")
	ErrNoPieceAtSource  = errors.New("no piece at from square")
	ErrNotYourPiece     = errors.New("piece belongs to the other player")
	ErrInvalidMove      = errors.New("invalid move")
	ErrOwnPiece         = errors.New("cannot capture own piece")
	ErrAlreadyConnected = errors.New("spectator already connected")
)

type Phase string

const (
	PhasePlacing  Phase = "placing"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Placement is a piece a player still has to put on the board.
type Placement struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

var placementOrder = []Placement{
	{Color: White, Type: Rook},
	{Color: White, Type: Bishop},
	{Color: White, Type: Knight},
	{Color: White, Type: Queen},
	{Color: Black, Type: Rook},
	{Color: Black, Type: Bishop},
	{Color: Black, Type: Knight},
	{Color: Black, Type: Queen},
}

// The Game struct holds a single Chessquito game and its spectators
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	phase       Phase
	toMove      Color
	placed      int
	lastMove    *Ply
	winner      *Color
	clocks      map[Color]*Clock
	connections *GameConnections
	log         *zap.SugaredLogger
}

type GameState struct {
	ID            string          `json:"id"`
	Board         BoardState      `json:"boardState"`
	Phase         Phase           `json:"phase"`
	ToMove        Color           `json:"toMove"`
	NextPlacement *Placement      `json:"nextPlacement"`
	Pieces        map[Color]int   `json:"pieces"`
	LastMove      *Ply            `json:"lastMove"`
	Winner        *Color          `json:"winner"`
	TimeUsed      map[Color]int64 `json:"timeUsedMs"`
}

func NewGame(id string, size int, log *zap.SugaredLogger) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(size),
		phase:       PhasePlacing,
		toMove:      White,
		clocks:      map[Color]*Clock{White: NewClock(), Black: NewClock()},
		connections: NewGameConnections(),
		log:         log.With("game", id),
	}
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Game) ToMove() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// Winner returns the winning color once the game is finished.
func (g *Game) Winner() (Color, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.winner == nil {
		return "", false
	}
	return *g.winner, true
}

// Counts returns the number of white and black pieces left.
func (g *Game) Counts() (white, black int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ColorCount(White), g.board.ColorCount(Black)
}

// String renders the board.
func (g *Game) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.String()
}

// NextPlacement returns the piece to be placed next, if any.
func (g *Game) NextPlacement() (Placement, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextPlacement()
}

func (g *Game) nextPlacement() (Placement, bool) {
	if g.phase != PhasePlacing || g.placed >= len(placementOrder) {
		return Placement{}, false
	}
	return placementOrder[g.placed], true
}

// isOwnHalf reports whether row y belongs to color: black owns the top half,
// white the bottom half.
func (g *Game) isOwnHalf(color Color, y int) bool {
	half := g.board.size / 2
	if color == White {
		return y >= half
	}
	return y < half
}

// Place puts the next piece of the placement order on (x, y).
func (g *Game) Place(x, y int) error {
	g.mu.Lock()
	next, ok := g.nextPlacement()
	if !ok {
		g.mu.Unlock()
		return ErrNotPlacing
	}
	switch {
	case !g.board.InBounds(x, y):
		g.mu.Unlock()
		return ErrOutOfBoard
	case g.board.GetPiece(x, y) != nil:
		g.mu.Unlock()
		return ErrOccupied
	case !g.isOwnHalf(next.Color, y):
		g.mu.Unlock()
		return fmt.Errorf("%w: %s cannot use row %d", ErrNotOwnHalf, next.Color, y)
	}

	g.board.PlacePiece(NewPiece(next.Type, next.Color, x, y), x, y)
	g.placed++
	g.log.Debugw("piece placed", "color", next.Color, "type", next.Type, "x", x, "y", y)

	if following, ok := g.nextPlacement(); ok {
		g.toMove = following.Color
	} else {
		g.phase = PhasePlaying
		g.toMove = White
		g.clocks[White].Start()
		g.log.Infow("placement finished", "white", g.board.ColorCount(White), "black", g.board.ColorCount(Black))
	}
	state := g.state()
	g.mu.Unlock()

	g.broadcastState(state)
	return nil
}

// Select checks that the side to move owns the piece on (x, y).
func (g *Game) Select(x, y int) (*PieceView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return nil, ErrNotPlaying
	}
	piece, err := g.selectPiece(Position{X: x, Y: y})
	if err != nil {
		return nil, err
	}
	return piece.view(), nil
}

func (g *Game) selectPiece(from Position) (*Piece, error) {
	if !g.board.InBounds(from.X, from.Y) {
		return nil, ErrOutOfBoard
	}
	piece := g.board.GetPiece(from.X, from.Y)
	if piece == nil {
		return nil, ErrNoPieceAtSource
	}
	if piece.color != g.toMove {
		return nil, ErrNotYourPiece
	}
	return piece, nil
}

// MakeMove validates and plays a move for the side to move.
func (g *Game) MakeMove(move Move) (Ply, error) {
	g.mu.Lock()

	if g.phase != PhasePlaying {
		g.mu.Unlock()
		return Ply{}, ErrNotPlaying
	}
	if err := g.validateMove(move); err != nil {
		g.mu.Unlock()
		return Ply{}, err
	}
	ply := g.executeMove(move)
	state := g.state()
	g.mu.Unlock()

	g.broadcastState(state)
	return ply, nil
}

func (g *Game) validateMove(move Move) error {
	piece, err := g.selectPiece(move.From)
	if err != nil {
		return err
	}
	if !g.board.IsValidMove(move.From.X, move.From.Y, move.To.X, move.To.Y) {
		return fmt.Errorf("%w: %s cannot go from (%d,%d) to (%d,%d)", ErrInvalidMove, piece.pieceType, move.From.X, move.From.Y, move.To.X, move.To.Y)
	}
	if target := g.board.GetPiece(move.To.X, move.To.Y); target != nil && target.color == piece.color {
		return ErrOwnPiece
	}
	return nil
}

func (g *Game) executeMove(move Move) Ply {
	ply := g.board.makePly(move)
	g.clocks[g.toMove].Stop()
	g.board.MovePiece(move.From.X, move.From.Y, move.To.X, move.To.Y)
	g.lastMove = &ply
	g.log.Debugw("move played", "color", g.toMove, "notation", ply.Notation)

	opponent := g.toMove.Opposite()
	if g.board.ColorCount(opponent) == 0 {
		winner := g.toMove
		g.winner = &winner
		g.phase = PhaseFinished
		g.log.Infow("game finished", "winner", winner)
		return ply
	}
	g.switchTurn()
	return ply
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opposite()
	g.clocks[g.toMove].Start()
}

// State returns a snapshot of the game for serialization.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() GameState {
	state := GameState{
		ID:       g.ID,
		Board:    g.board.Snapshot(),
		Phase:    g.phase,
		ToMove:   g.toMove,
		Pieces:   map[Color]int{White: g.board.ColorCount(White), Black: g.board.ColorCount(Black)},
		Winner:   g.winner,
		TimeUsed: map[Color]int64{White: g.clocks[White].Elapsed().Milliseconds(), Black: g.clocks[Black].Elapsed().Milliseconds()},
	}
	if next, ok := g.nextPlacement(); ok {
		state.NextPlacement = &next
	}
	if g.lastMove != nil {
		ply := *g.lastMove
		state.LastMove = &ply
	}
	return state
}

// RegisterConnection adds a spectator and sends it the current state. Every
// write to conn goes through its SpectatorConn, so broadcasts wait until the
// initial state is sent.
func (g *Game) RegisterConnection(spectatorID string, conn Connection) error {
	sc := NewSpectatorConn(conn)
	sc.mu.Lock()
	defer sc.mu.Unlock()

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[spectatorID]; exists {
		g.connections.mu.Unlock()
		return ErrAlreadyConnected
	}
	g.connections.connections[spectatorID] = sc
	g.connections.mu.Unlock()
	g.log.Debugw("spectator registered", "spectator", spectatorID)

	msg, err := stateMessage(g.State())
	if err == nil {
		err = sc.conn.WriteJSON(msg)
	}
	if err != nil {
		g.connections.remove(spectatorID, sc)
		return fmt.Errorf("sending initial state: %w", err)
	}
	return nil
}

// UnregisterConnection removes a spectator if conn is still its current
// connection.
func (g *Game) UnregisterConnection(spectatorID string, conn Connection) {
	g.connections.remove(spectatorID, conn)
	g.log.Debugw("spectator unregistered", "spectator", spectatorID)
}

func (g *Game) Spectators() int {
	return g.connections.Len()
}

func stateMessage(state GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, fmt.Errorf("marshalling game state: %w", err)
	}
	return ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}, nil
}

// broadcastState sends state to every spectator, dropping the ones that
// fail. It must be called without holding g.mu.
func (g *Game) broadcastState(state GameState) {
	activeConnections := g.connections.snapshot()
	if len(activeConnections) == 0 {
		return
	}
	msg, err := stateMessage(state)
	if err != nil {
		g.log.Errorw("failed to build state message", "error", err)
		return
	}
	for spectatorID, conn := range activeConnections {
		if err := conn.WriteJSON(msg); err != nil {
			g.log.Warnw("failed to send state to spectator", "spectator", spectatorID, "error", err)
			g.connections.remove(spectatorID, conn)
			conn.Close()
		}
	}
}
