package taxicab

import (
	"errors"
	"testing"
)

func TestSimulate(t *testing.T) {
	tests := []struct {
		input    string
		revisit  bool
		expected int
	}{
		{"R2, L3", false, 5},
		{"R2, R2, R2", false, 2},
		{"R5, L5, R5, R3", false, 12},
		{"L4, L1, L1", false, 4},
		{"R0", false, 0},
		{"L10, R0, L10", false, 20},
		{"R8, R4, R4, R8", true, 4},
		{"R2, R0, L0, R2, R2, R2", true, 0},
		{"R1, R1, R1, R1", true, 0},
		{"L2, L1, L1, L2", true, 1},
	}

	for i, tt := range tests {
		got, err := Simulate(tt.input, tt.revisit)
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error for %q: %v", i, tt.input, err)
		}
		if got != tt.expected {
			t.Fatalf("tests[%d] - distance wrong. input=%q revisit=%v\nexpected=%d, got=%d",
				i, tt.input, tt.revisit, tt.expected, got)
		}
	}
}

func TestSimulateNeverRevisited(t *testing.T) {
	_, err := FirstRevisit("R2, L3, R0")
	if err != ErrNeverRevisited {
		t.Fatalf("expected %v, got %v", ErrNeverRevisited, err)
	}
}

func TestSimulateParseErrorWins(t *testing.T) {
	// the walk closes a loop before the bad token is reached
	_, err := FirstRevisit("R1, R1, R1, R1, , R2")
	if !errors.Is(err, ErrEmptyInstruction) {
		t.Fatalf("expected %v, got %v", ErrEmptyInstruction, err)
	}
	_, err = BlocksAway("L1, , R2")
	if !errors.Is(err, ErrEmptyInstruction) {
		t.Fatalf("expected %v, got %v", ErrEmptyInstruction, err)
	}
	_, err = FirstRevisit("R2, X")
	if !errors.Is(err, ErrInvalidTurn) {
		t.Fatalf("expected %v, got %v", ErrInvalidTurn, err)
	}
}

func TestWalkerStopsOnRevisit(t *testing.T) {
	w := NewWalker(true)
	steps := []Instruction{
		{Turn: Right, Blocks: 8},
		{Turn: Right, Blocks: 4},
		{Turn: Right, Blocks: 4},
	}
	for _, in := range steps {
		if _, ok := w.Apply(in); ok {
			t.Fatalf("unexpected revisit at %v", w.Position())
		}
	}
	p, ok := w.Apply(Instruction{Turn: Right, Blocks: 8})
	if !ok {
		t.Fatalf("expected a revisit")
	}
	if p != (Position{X: 4, Y: 0}) || w.Position() != p {
		t.Fatalf("expected walker to stop at (4,0), got %v (walker at %v)", p, w.Position())
	}
	if w.Heading() != North {
		t.Fatalf("expected heading North, got %v", w.Heading())
	}
}

func TestWalkerZeroBlocks(t *testing.T) {
	w := NewWalker(true)
	if _, ok := w.Apply(Instruction{Turn: Left, Blocks: 0}); ok {
		t.Fatalf("a turn on the spot must not count as a revisit")
	}
	if w.Position() != (Position{}) || w.Heading() != West {
		t.Fatalf("expected (0,0) facing West, got %v", w)
	}
}

func TestRotationOrderFour(t *testing.T) {
	for _, start := range []Direction{North, East, South, West} {
		for _, turn := range []Turn{Left, Right} {
			d := start
			for i := 0; i < 4; i++ {
				d = d.Turn(turn)
				if i < 3 && d == start {
					t.Fatalf("%v turned %v %d times is back at start", start, turn, i+1)
				}
			}
			if d != start {
				t.Fatalf("%v turned %v four times gave %v", start, turn, d)
			}
		}
	}
}

func TestRotationTable(t *testing.T) {
	tests := []struct {
		from     Direction
		turn     Turn
		expected Direction
	}{
		{North, Left, West},
		{North, Right, East},
		{East, Left, North},
		{East, Right, South},
		{South, Left, East},
		{South, Right, West},
		{West, Left, South},
		{West, Right, North},
	}
	for i, tt := range tests {
		if got := tt.from.Turn(tt.turn); got != tt.expected {
			t.Fatalf("tests[%d] - %v turn %v wrong. expected=%v, got=%v", i, tt.from, tt.turn, tt.expected, got)
		}
	}
}
