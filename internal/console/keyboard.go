package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ReadInt when the line is not an integer.
var ErrNotANumber = errors.New("input is not a number")

// Input is the source of the player's answers.
type Input interface {
	// ReadLine returns the next line without its line ending, or io.EOF.
	ReadLine() (string, error)
	// ReadInt reads the next line as an integer.
	ReadInt() (int, error)
}

// Keyboard reads lines from a reader, usually os.Stdin.
type Keyboard struct {
	scanner *bufio.Scanner
}

var _ Input = (*Keyboard)(nil)

func NewKeyboard(r io.Reader) *Keyboard {
	return &Keyboard{scanner: bufio.NewScanner(r)}
}

func (k *Keyboard) ReadLine() (string, error) {
	if !k.scanner.Scan() {
		if err := k.scanner.Err(); err != nil {
			return "", fmt.Errorf("keyboard input error: %w", err)
		}
		return "", io.EOF
	}
	return k.scanner.Text(), nil
}

func (k *Keyboard) ReadInt() (int, error) {
	line, err := k.ReadLine()
	if err != nil {
		return -1, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrNotANumber, line)
	}
	return n, nil
}
