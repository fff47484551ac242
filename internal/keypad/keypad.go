package keypad

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Key is a button on the pad:
//
//	1 2 3
//	4 5 6
//	7 8 9
type Key int

func (k Key) row() int { return int(k-1) / 3 }
func (k Key) col() int { return int(k-1) % 3 }

// Move returns the key reached by in. Moves off the edge of the pad leave
// the key unchanged.
func (k Key) Move(in Instruction) Key {
	switch {
	case in == Up && k.row() > 0:
		return k - 3
	case in == Down && k.row() < 2:
		return k + 3
	case in == Left && k.col() > 0:
		return k - 1
	case in == Right && k.col() < 2:
		return k + 1
	}
	return k
}

func (k Key) String() string {
	return strconv.Itoa(int(k))
}

// Navigator moves a finger over the pad starting on 5.
type Navigator struct {
	key  Key
	code strings.Builder
}

func NewNavigator() *Navigator {
	return &Navigator{key: 5}
}

// Apply moves the finger, or presses the current key on End. It reports
// whether a key was pressed.
func (n *Navigator) Apply(in Instruction) bool {
	if in == End {
		n.code.WriteString(n.key.String())
		return true
	}
	n.key = n.key.Move(in)
	return false
}

func (n *Navigator) Key() Key {
	return n.key
}

// Code is the sequence of keys pressed so far.
func (n *Navigator) Code() string {
	return n.code.String()
}

// Code follows the instructions and returns the keys pressed, one for each
// line. A last line without a newline presses nothing.
func Code(input string) (string, error) {
	n := NewNavigator()
	for in, err := range Instructions(input) {
		if err != nil {
			return "", err
		}
		n.Apply(in)
	}
	return n.Code(), nil
}

// Render draws the pad with the current key in brackets.
func Render(w io.Writer, current Key) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			k := Key(row*3 + col + 1)
			if k == current {
				fmt.Fprintf(w, "[%d]", k)
			} else {
				fmt.Fprintf(w, " %d ", k)
			}
		}
		fmt.Fprintln(w)
	}
}
