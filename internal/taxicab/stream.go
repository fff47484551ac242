package taxicab

import (
	"iter"
	"strings"
)

const separator = ", "

// Instructions lazily parses a comma-space separated instruction stream. The
// sequence ends after the first error it yields.
func Instructions(s string) iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		for i := 0; ; i++ {
			token, rest, more := strings.Cut(s, separator)
			in, err := ParseInstruction(token)
			if err != nil {
				yield(Instruction{}, &ParseError{Index: i, Token: token, Err: err})
				return
			}
			if !yield(in, nil) || !more {
				return
			}
			s = rest
		}
	}
}

// ParseInstructions parses the whole stream, stopping at the first error.
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
