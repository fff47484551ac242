package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"easterbunny/internal/puzzle"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("easterbunny: ")

	manifestPath := flag.String("manifest", "", "puzzle manifest (default: built-in examples)")
	only := flag.String("only", "", "run only the named puzzle")
	trace := flag.Bool("trace", false, "print every step of each run")
	flag.Parse()

	var m *puzzle.Manifest
	var err error
	if *manifestPath == "" {
		m, err = puzzle.Default()
	} else {
		m, err = puzzle.LoadFile(*manifestPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	results, err := puzzle.RunAll(m, *only)
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, r := range results {
		if *trace {
			// a failing trace is reported by the result line below
			_ = puzzle.Trace(os.Stdout, r.Puzzle)
		}
		fmt.Println(r)
		if !r.Matched() {
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d of %d puzzles failed", failed, len(results))
	}
}
