package taxicab

import (
	"errors"
	"fmt"
)

var ErrNeverRevisited = errors.New("never visited same location twice")

// Position is a point on the street grid, origin at (0,0).
type Position struct {
	X, Y int
}

func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance is the taxicab distance from the origin.
func (p Position) Distance() int {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Walker follows instructions from the origin facing North.
type Walker struct {
	heading Direction
	pos     Position
	visited map[Position]bool
}

// NewWalker creates a walker. With detectRevisit set, every unit step is
// recorded and Apply reports the first position entered twice.
func NewWalker(detectRevisit bool) *Walker {
	w := &Walker{heading: North}
	if detectRevisit {
		w.visited = map[Position]bool{w.pos: true}
	}
	return w
}

// Apply turns and then walks. When revisit detection is on and a step lands
// on a visited position, the walker stops there and Apply returns it with
// true; the rest of the instruction is not walked.
func (w *Walker) Apply(in Instruction) (Position, bool) {
	w.heading = w.heading.Turn(in.Turn)
	step := w.heading.Step()
	if w.visited == nil {
		n := int(in.Blocks)
		w.pos = w.pos.Add(Position{X: step.X * n, Y: step.Y * n})
		return Position{}, false
	}
	for i := Blocks(0); i < in.Blocks; i++ {
		w.pos = w.pos.Add(step)
		if w.visited[w.pos] {
			return w.pos, true
		}
		w.visited[w.pos] = true
	}
	return Position{}, false
}

func (w *Walker) Position() Position {
	return w.pos
}

func (w *Walker) Heading() Direction {
	return w.heading
}

func (w *Walker) String() string {
	return fmt.Sprintf("%v facing %v", w.pos, w.heading)
}

// Simulate walks the whole instruction stream and returns the distance of
// the final position, or with detectRevisit the distance of the first
// position visited twice. The stream is parsed in full before the walk so a
// malformed token anywhere wins over any result of the walk.
func Simulate(input string, detectRevisit bool) (int, error) {
	instructions, err := ParseInstructions(input)
	if err != nil {
		return 0, err
	}
	w := NewWalker(detectRevisit)
	for _, in := range instructions {
		if p, ok := w.Apply(in); ok {
			return p.Distance(), nil
		}
	}
	if detectRevisit {
		return 0, ErrNeverRevisited
	}
	return w.Position().Distance(), nil
}

// BlocksAway is the distance to the end of the walk.
func BlocksAway(input string) (int, error) {
	return Simulate(input, false)
}

// FirstRevisit is the distance to the first position visited twice.
func FirstRevisit(input string) (int, error) {
	return Simulate(input, true)
}
