package keypad

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Instruction is a single keypad move, or End to press the current key.
type Instruction int

const (
	Up Instruction = iota
	Down
	Left
	Right
	End
)

func (i Instruction) String() string {
	switch i {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case End:
		return "End"
	}
	return fmt.Sprintf("Instruction(%d)", int(i))
}

var ErrInvalidInstruction = errors.New("instruction invalid")

// InvalidInstructionError carries the character that is not an instruction.
type InvalidInstructionError struct {
	Char rune
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("%v: %c", ErrInvalidInstruction, e.Char)
}

func (e *InvalidInstructionError) Is(target error) bool {
	return target == ErrInvalidInstruction
}

// ParseInstruction maps one character to its instruction.
func ParseInstruction(c rune) (Instruction, error) {
	switch c {
	case 'U':
		return Up, nil
	case 'R':
		return Right, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case '\n':
		return End, nil
	}
	return 0, &InvalidInstructionError{Char: c}
}

var lexer = newLexer()

func newLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`U`), tokAction(Up))
	l.Add([]byte(`D`), tokAction(Down))
	l.Add([]byte(`L`), tokAction(Left))
	l.Add([]byte(`R`), tokAction(Right))
	l.Add([]byte(`[\n]`), tokAction(End))
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

func tokAction(in Instruction) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return in, nil
	}
}

// Instructions lazily parses s one character at a time. The sequence ends
// after the first error it yields.
func Instructions(s string) iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		scanner, err := lexer.Scanner([]byte(s))
		if err != nil {
			yield(0, err)
			return
		}
		// every instruction is exactly one byte long
		offset := 0
		for {
			tok, err, eof := scanner.Next()
			if eof {
				return
			}
			if err != nil {
				yield(0, invalidAt(s, offset, err))
				return
			}
			if !yield(tok.(Instruction), nil) {
				return
			}
			offset++
		}
	}
}

// invalidAt turns a scanner failure into the error for the character the
// scanner stopped on.
func invalidAt(s string, offset int, err error) error {
	if offset >= len(s) {
		return err
	}
	c, _ := utf8.DecodeRuneInString(s[offset:])
	return &InvalidInstructionError{Char: c}
}

// ParseInstructions parses the whole of s, stopping at the first error.
func ParseInstructions(s string) ([]Instruction, error) {
	var out []Instruction
	for in, err := range Instructions(s) {
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}
