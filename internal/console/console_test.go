package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/benbeisheim/chessquito/internal/model"
	"go.uber.org/zap/zaptest"
)

// quickWhiteWin is the input of a game where the white queen takes every
// black piece, with a few mistakes along the way.
var quickWhiteWin = []string{
	// placement
	"abc", "3", // not a number
	"0", "3",
	"1", "3",
	"2", "3",
	"3", "3",
	"0", "3", // taken, and on white's half
	"0", "0",
	"1", "0",
	"2", "0",
	"3", "0",
	// moves
	"3", "3", "2", "1", // queens do not jump like knights
	"3", "3", "3", "0",
	"0", "3", // not black's rook
	"2", "0", "0", "1",
	"3", "0", "1", "0",
	"0", "1", "2", "2",
	"1", "0", "0", "0",
	"2", "2", "3", "0",
	"0", "0", "3", "0",
}

func script(lines []string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	game := model.NewGame("console-game", model.ChessquitoSize, zaptest.NewLogger(t).Sugar())
	c := New(NewKeyboard(script(quickWhiteWin)), &out, zaptest.NewLogger(t).Sugar())

	winner, err := c.Play(game)
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	if winner != model.White {
		t.Errorf("wanted white to win, got %v", winner)
	}

	got := out.String()
	wantLines := []string{
		"WHITE player has to place ROOK",
		"BLACK player has to place QUEEN",
		"Position of the piece? (0,0 is upper left)",
		"WHITE has 4 pieces left.\nBLACK has 4 pieces left.",
		"WHITE player moves its QUEEN.",
		"WHITE player moved its QUEEN to (3,0).",
		"BLACK player moved its KNIGHT to (0,1).",
		"|  |  |  |QW|\n|  |  |  |  |\n|  |  |  |  |\n|RW|BW|KW|  |\n",
		"WHITE player won the Chessquito!\n",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("wanted output to contain %q", want)
		}
	}
	if n := strings.Count(got, invalidPosition); n != 4 {
		t.Errorf("wanted 4 invalid position messages, got %v", n)
	}
	if !strings.HasSuffix(got, "WHITE player won the Chessquito!\n") {
		t.Errorf("wanted the winner to be announced last")
	}
}

func TestPlayInputEnds(t *testing.T) {
	inputEndsTests := [][]string{
		{},
		{"0"},
		quickWhiteWin[:20],
		quickWhiteWin[:len(quickWhiteWin)-1],
	}
	for i, lines := range inputEndsTests {
		var out bytes.Buffer
		game := model.NewGame("g", model.ChessquitoSize, zaptest.NewLogger(t).Sugar())
		c := New(NewKeyboard(script(lines)), &out, zaptest.NewLogger(t).Sugar())
		if _, err := c.Play(game); !errors.Is(err, io.EOF) {
			t.Errorf("Test %v: wanted io.EOF, got %v", i, err)
		}
	}
}

func TestPlayReselectsAfterRejectedMove(t *testing.T) {
	lines := []string{
		"0", "3", "1", "3", "2", "3", "3", "3",
		"0", "0", "1", "0", "2", "0", "3", "0",
		"0", "3", "1", "2", // rooks do not move diagonally
		"3", "3", "3", "0", // so the queen goes instead
	}
	var out bytes.Buffer
	game := model.NewGame("g", model.ChessquitoSize, zaptest.NewLogger(t).Sugar())
	c := New(NewKeyboard(script(lines)), &out, zaptest.NewLogger(t).Sugar())

	if _, err := c.Play(game); !errors.Is(err, io.EOF) {
		t.Fatalf("wanted input to run out, got %v", err)
	}
	got := out.String()
	rook := strings.Index(got, "WHITE player moves its ROOK.")
	queen := strings.Index(got, "WHITE player moved its QUEEN to (3,0).")
	switch {
	case rook < 0:
		t.Errorf("wanted the rook to be selected first, got:\n%v", got)
	case queen < rook:
		t.Errorf("wanted the queen to move after the rook was refused, got:\n%v", got)
	case !strings.Contains(got[rook:queen], "Select a piece."):
		t.Errorf("wanted to be asked for a piece again after the refused move")
	}
	if _, black := game.Counts(); black != 3 {
		t.Errorf("wanted the black queen to be taken, %v black pieces left", black)
	}
}
