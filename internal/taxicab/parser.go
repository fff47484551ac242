package taxicab

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrEmptyInstruction = errors.New("instruction string is empty")
	ErrInvalidTurn      = errors.New("turn character invalid")
	ErrInvalidBlocks    = errors.New("could not parse blocks")
)

// Instruction turns the walker and then moves it Blocks steps forward.
type Instruction struct {
	Turn   Turn   `parser:"@Turn"`
	Blocks Blocks `parser:"@Blocks"`
}

func (i Instruction) String() string {
	return i.Turn.String() + strconv.FormatUint(uint64(i.Blocks), 10)
}

// Blocks is a walking distance in unit steps.
type Blocks uint32

// Capture always reads decimal, so leading zeros are not taken as octal.
func (b *Blocks) Capture(values []string) error {
	n, err := strconv.ParseUint(values[0], 10, 32)
	if err != nil {
		return err
	}
	*b = Blocks(n)
	return nil
}

var instructionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Blocks", Pattern: `[0-9]+`},
})

var parser = participle.MustBuild[Instruction](participle.Lexer(instructionLexer))

// ParseInstruction parses a single token such as "R12".
func ParseInstruction(token string) (Instruction, error) {
	if token == "" {
		return Instruction{}, ErrEmptyInstruction
	}
	if token[0] != 'L' && token[0] != 'R' {
		return Instruction{}, ErrInvalidTurn
	}
	// the turn is known to be good, so anything the grammar rejects is in
	// the blocks part of the token
	in, err := parser.ParseString("", token)
	if err != nil {
		return Instruction{}, ErrInvalidBlocks
	}
	return *in, nil
}

// ParseError records where in a stream an instruction failed to parse. The
// message is that of the underlying error.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Detail describes the failure together with its position in the stream.
func (e *ParseError) Detail() string {
	return fmt.Sprintf("instruction %d (%q): %v", e.Index, e.Token, e.Err)
}
