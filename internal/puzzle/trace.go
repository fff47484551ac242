package puzzle

import (
	"fmt"
	"io"

	"easterbunny/internal/keypad"
	"easterbunny/internal/taxicab"
)

// Trace writes the steps of a run to w: the walker after every instruction,
// or the pad every time a key is pressed.
func Trace(w io.Writer, p *Puzzle) error {
	fmt.Fprintf(w, "== %s\n", p.Name)
	switch p.Kind {
	case KindTaxicab:
		return traceTaxicab(w, p)
	case KindKeypad:
		return traceKeypad(w, p)
	}
	return fmt.Errorf("unknown kind %q", p.Kind)
}

func traceTaxicab(w io.Writer, p *Puzzle) error {
	instructions, err := taxicab.ParseInstructions(p.Input)
	if err != nil {
		return err
	}
	walker := taxicab.NewWalker(p.Revisit)
	for _, in := range instructions {
		if pos, ok := walker.Apply(in); ok {
			fmt.Fprintf(w, "%-6v revisited %v\n", in, pos)
			return nil
		}
		fmt.Fprintf(w, "%-6v %v\n", in, walker)
	}
	return nil
}

func traceKeypad(w io.Writer, p *Puzzle) error {
	n := keypad.NewNavigator()
	for in, err := range keypad.Instructions(p.Input) {
		if err != nil {
			return err
		}
		if n.Apply(in) {
			fmt.Fprintf(w, "pressed %v, code %s\n", n.Key(), n.Code())
			keypad.Render(w, n.Key())
		}
	}
	return nil
}
