package model

import (
	"fmt"
	"strings"
)

// ChessquitoSize is the side length of a Chessquito board.
const ChessquitoSize = 4

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// getSquareNotation names a square algebraically, files from "a" and rank 1
// on the bottom row.
func (p Position) getSquareNotation(size int) string {
	return fmt.Sprintf("%c%d", p.X+97, size-p.Y)
}

// Board is a size×size grid of cells indexed [x][y]. A piece is held by at
// most one cell.
type Board struct {
	size  int
	cells [][]*Piece
}

func NewBoard(size int) *Board {
	board := &Board{size: size}
	for i := 0; i < size; i++ {
		board.cells = append(board.cells, make([]*Piece, size))
	}
	return board
}

func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// PlacePiece puts piece on (x, y), replacing any occupant. A nil piece is
// ignored. The coordinates must be in bounds.
func (b *Board) PlacePiece(piece *Piece, x, y int) {
	if piece == nil {
		return
	}
	if b.InBounds(piece.x, piece.y) && b.cells[piece.x][piece.y] == piece {
		b.cells[piece.x][piece.y] = nil
	}
	piece.x, piece.y = x, y
	b.cells[x][y] = piece
}

// IsValidMove reports whether the piece on (oldX, oldY) may go to
// (newX, newY). Captures are allowed here; refusing to take one's own piece
// is up to the caller. Pieces in between are not checked.
func (b *Board) IsValidMove(oldX, oldY, newX, newY int) bool {
	if !b.InBounds(oldX, oldY) {
		return false
	}
	piece := b.cells[oldX][oldY]
	if piece == nil {
		return false
	}
	outOfBoard := !b.InBounds(newX, newY)
	return !outOfBoard && piece.IsValidMove(newX-oldX, newY-oldY)
}

// MovePiece relocates the piece on (oldX, oldY) to (newX, newY), capturing
// whatever stood there. The piece's own position and moved flag follow.
func (b *Board) MovePiece(oldX, oldY, newX, newY int) {
	piece := b.cells[oldX][oldY]
	if piece == nil || (oldX == newX && oldY == newY) {
		return
	}
	b.cells[newX][newY] = piece
	b.cells[oldX][oldY] = nil
	piece.Move(newX-oldX, newY-oldY)
}

func (b *Board) RemovePiece(x, y int) {
	b.cells[x][y] = nil
}

// GetPiece returns the piece on (x, y) or nil. Out of range coordinates
// panic; check InBounds first.
func (b *Board) GetPiece(x, y int) *Piece {
	return b.cells[x][y]
}

// ColorCount returns the number of pieces of the given color on the board.
func (b *Board) ColorCount(color Color) int {
	counter := 0
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.cells[x][y] != nil && b.cells[x][y].color == color {
				counter++
			}
		}
	}
	return counter
}

// String draws the board one row (y) per line, columns left to right by x.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if piece := b.cells[x][y]; piece != nil {
				sb.WriteString("|" + piece.Symbol())
			} else {
				sb.WriteString("|  ")
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

type BoardState struct {
	Size  int            `json:"size"`
	Board [][]*PieceView `json:"board"`
}

// PieceView is the serialized form of a piece.
type PieceView struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

func (p *Piece) view() *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Type:     p.pieceType,
		Color:    p.color,
		Position: Position{X: p.x, Y: p.y},
		HasMoved: p.hasMoved,
	}
}

// Snapshot copies the board into rows indexed [y][x].
func (b *Board) Snapshot() BoardState {
	state := BoardState{Size: b.size}
	for y := 0; y < b.size; y++ {
		row := make([]*PieceView, b.size)
		for x := 0; x < b.size; x++ {
			row[x] = b.cells[x][y].view()
		}
		state.Board = append(state.Board, row)
	}
	return state
}
