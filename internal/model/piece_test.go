package model

import "testing"

func TestPieceIsValidMove(t *testing.T) {
	isRook := func(dx, dy int) bool { return (dx == 0 && dy != 0) || (dx != 0 && dy == 0) }
	isBishop := func(dx, dy int) bool { return dx != 0 && (dx == dy || dx == -dy) }
	isValidMoveTests := []struct {
		pieceType PieceType
		want      func(dx, dy int) bool
	}{
		{
			pieceType: Rook,
			want:      isRook,
		},
		{
			pieceType: Bishop,
			want:      isBishop,
		},
		{
			pieceType: Queen,
			want:      func(dx, dy int) bool { return isRook(dx, dy) || isBishop(dx, dy) },
		},
		{
			pieceType: Knight,
			want: func(dx, dy int) bool {
				switch [2]int{dx, dy} {
				case [2]int{1, 2}, [2]int{1, -2}, [2]int{-1, 2}, [2]int{-1, -2},
					[2]int{2, 1}, [2]int{2, -1}, [2]int{-2, 1}, [2]int{-2, -1}:
					return true
				}
				return false
			},
		},
		{
			pieceType: King,
			want: func(dx, dy int) bool {
				return !(dx == 0 && dy == 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
			},
		},
	}
	for i, test := range isValidMoveTests {
		for _, color := range []Color{White, Black} {
			p := NewPiece(test.pieceType, color, 0, 0)
			for dx := -3; dx <= 3; dx++ {
				for dy := -3; dy <= 3; dy++ {
					want := test.want(dx, dy)
					if got := p.IsValidMove(dx, dy); want != got {
						t.Errorf("Test %v: wanted IsValidMove(%v, %v) of %v to be %v", i, dx, dy, p, want)
					}
				}
			}
		}
	}
}

func TestPieceIsValidMoveZero(t *testing.T) {
	for _, pieceType := range []PieceType{Pawn, Rook, Knight, Bishop, Queen, King} {
		p := NewPiece(pieceType, White, 1, 1)
		if p.IsValidMove(0, 0) {
			t.Errorf("wanted %v to refuse staying in place", pieceType)
		}
	}
}

func TestPawnIsValidMove(t *testing.T) {
	pawnTests := []struct {
		color  Color
		moved  bool
		dx, dy int
		want   bool
	}{
		{color: White, dy: -1, want: true},
		{color: White, dy: -2, want: true},
		{color: White, moved: true, dy: -1, want: true},
		{color: White, moved: true, dy: -2},
		{color: White, dy: 1},
		{color: White, dy: -3},
		{color: White, dx: 1, dy: -1},
		{color: Black, dy: 1, want: true},
		{color: Black, dy: 2, want: true},
		{color: Black, moved: true, dy: 2},
		{color: Black, dy: -1},
		{color: Black, dx: -1},
	}
	for i, test := range pawnTests {
		p := NewPiece(Pawn, test.color, 1, 1)
		if test.moved {
			p.Move(0, 0)
		}
		if got := p.IsValidMove(test.dx, test.dy); test.want != got {
			t.Errorf("Test %v: wanted IsValidMove(%v, %v) of %v pawn to be %v", i, test.dx, test.dy, test.color, test.want)
		}
	}
}

func TestPieceMove(t *testing.T) {
	p := NewPiece(Knight, Black, 0, 0)
	if p.HasMoved() {
		t.Fatalf("new piece should not have moved")
	}
	p.Move(1, 2)
	switch {
	case p.X() != 1, p.Y() != 2:
		t.Errorf("wanted piece at (1,2), got (%v,%v)", p.X(), p.Y())
	case !p.HasMoved():
		t.Errorf("wanted piece to have moved")
	case p.Type() != Knight, p.Color() != Black:
		t.Errorf("type or color changed: %v", p)
	}
	p.Move(-1, -2)
	if !p.HasMoved() {
		t.Errorf("moving back should not reset the moved flag")
	}
}

func TestPieceString(t *testing.T) {
	stringTests := []struct {
		p          *Piece
		want       string
		wantSymbol string
	}{
		{
			p:          NewPiece(Rook, White, 0, 3),
			want:       "ROOK WHITE (0,3)",
			wantSymbol: "RW",
		},
		{
			p:          NewPiece(Queen, Black, 2, 1),
			want:       "QUEEN BLACK (2,1)",
			wantSymbol: "QB",
		},
		{
			p:          NewPiece(Knight, Black, 0, 0),
			want:       "KNIGHT BLACK (0,0)",
			wantSymbol: "KB",
		},
	}
	for i, test := range stringTests {
		if got := test.p.String(); test.want != got {
			t.Errorf("Test %v: wanted %q, got %q", i, test.want, got)
		}
		if got := test.p.Symbol(); test.wantSymbol != got {
			t.Errorf("Test %v: wanted symbol %q, got %q", i, test.wantSymbol, got)
		}
	}
}

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Errorf("wanted white and black to be opposites")
	}
}
