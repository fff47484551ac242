package taxicab

import "fmt"

// Turn is a relative rotation of the walker's heading.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// Capture lets the grammar fill a Turn straight from its token.
func (t *Turn) Capture(values []string) error {
	switch values[0] {
	case "L":
		*t = Left
	case "R":
		*t = Right
	default:
		return ErrInvalidTurn
	}
	return nil
}

// Direction is the walker's heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// rotations[heading][turn]
var rotations = [4][2]Direction{
	North: {Left: West, Right: East},
	East:  {Left: North, Right: South},
	South: {Left: East, Right: West},
	West:  {Left: South, Right: North},
}

// Turn returns the heading after applying t.
func (d Direction) Turn(t Turn) Direction {
	return rotations[d][t]
}

// Step is the unit move along d.
func (d Direction) Step() Position {
	switch d {
	case North:
		return Position{Y: 1}
	case East:
		return Position{X: 1}
	case South:
		return Position{Y: -1}
	default:
		return Position{X: -1}
	}
}

func (d Direction) String() string {
	return [...]string{"North", "East", "South", "West"}[d]
}
