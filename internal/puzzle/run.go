package puzzle

import (
	"fmt"
	"strconv"

	"easterbunny/internal/keypad"
	"easterbunny/internal/taxicab"
)

// Result is the outcome of running one puzzle.
type Result struct {
	Puzzle *Puzzle
	Answer string
	Err    error
}

// Matched reports whether the puzzle ran and, if it has an expected answer,
// whether it got it.
func (r Result) Matched() bool {
	if r.Err != nil {
		return false
	}
	return r.Puzzle.Want == nil || *r.Puzzle.Want == r.Answer
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: error: %v", r.Puzzle.Name, r.Err)
	case r.Puzzle.Want == nil:
		return fmt.Sprintf("%s: %s", r.Puzzle.Name, r.Answer)
	case r.Matched():
		return fmt.Sprintf("%s: %s ok", r.Puzzle.Name, r.Answer)
	}
	return fmt.Sprintf("%s: %s (want %s)", r.Puzzle.Name, r.Answer, *r.Puzzle.Want)
}

// Solve runs the simulation for p.
func Solve(p *Puzzle) (string, error) {
	switch p.Kind {
	case KindTaxicab:
		d, err := taxicab.Simulate(p.Input, p.Revisit)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(d), nil
	case KindKeypad:
		return keypad.Code(p.Input)
	}
	return "", fmt.Errorf("unknown kind %q", p.Kind)
}

func Run(p *Puzzle) Result {
	answer, err := Solve(p)
	if err != nil {
		return Result{Puzzle: p, Err: fmt.Errorf("puzzle %s: %w", p.Name, err)}
	}
	return Result{Puzzle: p, Answer: answer}
}

// RunAll runs every puzzle in manifest order, or only the one called only
// when it is not empty.
func RunAll(m *Manifest, only string) ([]Result, error) {
	if only != "" {
		p, ok := m.Lookup(only)
		if !ok {
			return nil, fmt.Errorf("no puzzle called %s", only)
		}
		return []Result{Run(p)}, nil
	}
	results := make([]Result, 0, len(m.Puzzles))
	for _, p := range m.Puzzles {
		results = append(results, Run(p))
	}
	return results, nil
}
