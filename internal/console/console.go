// Package console plays a Chessquito game over a text input and output.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/benbeisheim/chessquito/internal/model"
	"go.uber.org/zap"
)

const invalidPosition = "Error: Give a valid position. (0,0 is upper left)"

// Console asks the players for their placements and moves.
type Console struct {
	in  Input
	out io.Writer
	log *zap.SugaredLogger
}

func New(in Input, out io.Writer, log *zap.SugaredLogger) *Console {
	return &Console{
		in:  in,
		out: out,
		log: log,
	}
}

// Play runs the game to the end and returns the winner. It stops with an
// error wrapping io.EOF if the input ends first.
func (c *Console) Play(game *model.Game) (model.Color, error) {
	for {
		next, ok := game.NextPlacement()
		if !ok {
			break
		}
		if err := c.placePiece(game, next); err != nil {
			return "", err
		}
	}

	for game.Phase() == model.PhasePlaying {
		fmt.Fprintln(c.out, game)
		white, black := game.Counts()
		fmt.Fprintf(c.out, "WHITE has %d pieces left.\nBLACK has %d pieces left.\n", white, black)
		if err := c.movePiece(game); err != nil {
			return "", err
		}
	}

	fmt.Fprintln(c.out, game)
	winner, ok := game.Winner()
	if !ok {
		return "", fmt.Errorf("game %s ended without a winner", game.ID)
	}
	fmt.Fprintf(c.out, "%s player won the Chessquito!\n", winner)
	return winner, nil
}

func (c *Console) placePiece(game *model.Game, next model.Placement) error {
	fmt.Fprintln(c.out, game)
	fmt.Fprintf(c.out, "%s player has to place %s\n", next.Color, next.Type)
	fmt.Fprintln(c.out, "Position of the piece? (0,0 is upper left)")
	x, y, err := c.readPosition()
	if err != nil {
		return err
	}
	for {
		err := game.Place(x, y)
		if err == nil {
			return nil
		}
		if errors.Is(err, model.ErrNotPlacing) {
			return err
		}
		c.log.Debugw("placement rejected", "x", x, "y", y, "error", err)
		fmt.Fprintln(c.out, invalidPosition)
		if x, y, err = c.readPosition(); err != nil {
			return err
		}
	}
}

// movePiece asks for a piece and its destination until a legal move is made.
// A rejected destination starts over from the selection, so a piece without
// a legal move cannot trap the player.
func (c *Console) movePiece(game *model.Game) error {
	color := game.ToMove()
	fmt.Fprintf(c.out, "%s player has to move a piece.\n", color)
	for {
		from, piece, err := c.selectPiece(game)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.out, "%s player moves its %s.\n", color, piece.Type)
		fmt.Fprintln(c.out, "Position of the new piece? (0,0 is upper left)")
		newX, newY, err := c.readPosition()
		if err != nil {
			return err
		}
		_, err = game.MakeMove(model.Move{From: from, To: model.Position{X: newX, Y: newY}})
		if err == nil {
			fmt.Fprintf(c.out, "%s player moved its %s to (%d,%d).\n", color, piece.Type, newX, newY)
			return nil
		}
		if errors.Is(err, model.ErrNotPlaying) {
			return err
		}
		c.log.Debugw("move rejected", "from", from, "x", newX, "y", newY, "error", err)
		fmt.Fprintln(c.out, invalidPosition)
	}
}

func (c *Console) selectPiece(game *model.Game) (model.Position, *model.PieceView, error) {
	fmt.Fprintln(c.out, "Select a piece. (0,0 is upper left)")
	for {
		x, y, err := c.readPosition()
		if err != nil {
			return model.Position{}, nil, err
		}
		piece, err := game.Select(x, y)
		if err == nil {
			return model.Position{X: x, Y: y}, piece, nil
		}
		if errors.Is(err, model.ErrNotPlaying) {
			return model.Position{}, nil, err
		}
		c.log.Debugw("selection rejected", "x", x, "y", y, "error", err)
		fmt.Fprintln(c.out, invalidPosition)
	}
}

func (c *Console) readPosition() (x, y int, err error) {
	fmt.Fprint(c.out, "x: ")
	if x, err = c.readInt(); err != nil {
		return 0, 0, err
	}
	fmt.Fprint(c.out, "y: ")
	if y, err = c.readInt(); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// readInt returns -1 for an entry that is not a number so the caller
// rejects it like any other invalid position.
func (c *Console) readInt() (int, error) {
	n, err := c.in.ReadInt()
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, ErrNotANumber):
		c.log.Warnw("number format exception for the given user input", "error", err)
		return -1, nil
	default:
		return 0, fmt.Errorf("reading input: %w", err)
	}
}
