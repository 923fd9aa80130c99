package model

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is one executed move. Only the latest ply of a game is kept.
type Ply struct {
	Piece         *PieceView `json:"piece"`
	From          Position   `json:"from"`
	To            Position   `json:"to"`
	CapturedPiece *PieceView `json:"capturedPiece"`
	Notation      string     `json:"notation"`
}

func (b *Board) makePly(move Move) Ply {
	return Ply{
		Piece:         b.cells[move.From.X][move.From.Y].view(),
		From:          move.From,
		To:            move.To,
		CapturedPiece: b.cells[move.To.X][move.To.Y].view(),
		Notation:      b.getNotation(move),
	}
}

func (b *Board) getNotation(move Move) string {
	piece := b.cells[move.From.X][move.From.Y]
	capture := ""
	if b.cells[move.To.X][move.To.Y] != nil {
		capture = "x"
	}
	return piece.pieceType.getPieceNotation() + capture + move.To.getSquareNotation(b.size)
}
