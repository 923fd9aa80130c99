package model

import "fmt"

type PieceType string

const (
	Pawn   PieceType = "PAWN"
	Rook   PieceType = "ROOK"
	Knight PieceType = "KNIGHT"
	Bishop PieceType = "BISHOP"
	Queen  PieceType = "QUEEN"
	King   PieceType = "KING"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

type Color string

const (
	Black Color = "BLACK"
	White Color = "WHITE"
)

// Opposite returns the color of the other player.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is a chess piece. Its type and color never change; its position is
// only meaningful while a board cell holds it.
type Piece struct {
	pieceType PieceType
	color     Color
	x, y      int
	hasMoved  bool
}

func NewPiece(pieceType PieceType, color Color, x, y int) *Piece {
	return &Piece{
		pieceType: pieceType,
		color:     color,
		x:         x,
		y:         y,
	}
}

func (p *Piece) Type() PieceType { return p.pieceType }
func (p *Piece) Color() Color    { return p.color }
func (p *Piece) X() int          { return p.x }
func (p *Piece) Y() int          { return p.y }
func (p *Piece) HasMoved() bool  { return p.hasMoved }

// IsValidMove reports whether the piece type allows the displacement
// (dx, dy), measured destination minus origin. Board bounds and occupancy
// are not considered.
func (p *Piece) IsValidMove(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	switch p.pieceType {
	case Queen:
		return isStraight(dx, dy) || isDiagonal(dx, dy)
	case Rook:
		return isStraight(dx, dy)
	case Bishop:
		return isDiagonal(dx, dy)
	case Knight:
		return (abs(dx) == 1 && abs(dy) == 2) || (abs(dx) == 2 && abs(dy) == 1)
	case King:
		return abs(dx) <= 1 && abs(dy) <= 1
	case Pawn:
		if dx != 0 || !p.isForward(dy) {
			return false
		}
		return abs(dy) == 1 || (abs(dy) == 2 && !p.hasMoved)
	}
	return false
}

// isForward maps a color to its pawn direction: white moves up the board
// (towards y = 0), black moves down.
func (p *Piece) isForward(dy int) bool {
	if p.color == White {
		return dy < 0
	}
	return dy > 0
}

// Move shifts the piece by (dx, dy) and marks it as moved. The caller must
// have validated the move.
func (p *Piece) Move(dx, dy int) {
	p.x += dx
	p.y += dy
	p.hasMoved = true
}

// Symbol is the two letter cell form used by the board rendering, e.g. "RW".
func (p *Piece) Symbol() string {
	return string(p.pieceType[0]) + string(p.color[0])
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s (%d,%d)", p.pieceType, p.color, p.x, p.y)
}

func isStraight(dx, dy int) bool {
	return (dx == 0) != (dy == 0)
}

func isDiagonal(dx, dy int) bool {
	return dx != 0 && abs(dx) == abs(dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
