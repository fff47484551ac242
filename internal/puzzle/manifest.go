package puzzle

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects the simulation a puzzle runs.
type Kind string

const (
	KindTaxicab Kind = "taxicab"
	KindKeypad  Kind = "keypad"
)

// Manifest is a list of puzzles, in the order they are run.
type Manifest struct {
	Puzzles []*Puzzle `yaml:"puzzles"`
}

// Puzzle is one instruction stream with an optional expected answer.
type Puzzle struct {
	Name    string  `yaml:"name"`
	Kind    Kind    `yaml:"kind"`
	Revisit bool    `yaml:"revisit,omitempty"`
	Input   string  `yaml:"input,omitempty"`
	File    string  `yaml:"file,omitempty"`
	Want    *string `yaml:"want,omitempty"`
}

// ValidationError lists everything wrong with a manifest.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "manifest validation failed: " + strings.Join(e.Issues, "; ")
}

//go:embed puzzles.yaml inputs
var builtin embed.FS

// Default loads the built-in examples.
func Default() (*Manifest, error) {
	return Load(builtin, "puzzles.yaml")
}

// LoadFile loads a manifest from disk. Input files are resolved relative to
// the manifest.
func LoadFile(name string) (*Manifest, error) {
	return Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}

// Load decodes and validates the manifest called name in fsys and reads in
// the inputs of puzzles that name a file.
func Load(fsys fs.FS, name string) (*Manifest, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Manifest
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", name)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", name, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	dir := path.Dir(name)
	for _, p := range m.Puzzles {
		if p.File == "" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, p.File))
		if err != nil {
			return nil, fmt.Errorf("manifest: puzzle %s: %w", p.Name, err)
		}
		p.Input = string(data)
		// input files end in a newline, which is not part of a taxicab stream
		if p.Kind == KindTaxicab {
			p.Input = strings.TrimSpace(p.Input)
		}
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	var issues []string
	if len(m.Puzzles) == 0 {
		issues = append(issues, "no puzzles")
	}
	seen := make(map[string]bool)
	for i, p := range m.Puzzles {
		if p == nil {
			issues = append(issues, fmt.Sprintf("puzzle %d is empty", i))
			continue
		}
		name := p.Name
		if name == "" {
			issues = append(issues, fmt.Sprintf("puzzle %d has no name", i))
			name = fmt.Sprintf("#%d", i)
		} else if seen[name] {
			issues = append(issues, fmt.Sprintf("puzzle %s is listed twice", name))
		}
		seen[name] = true

		switch p.Kind {
		case KindTaxicab:
		case KindKeypad:
			if p.Revisit {
				issues = append(issues, fmt.Sprintf("puzzle %s: revisit only applies to taxicab puzzles", name))
			}
		default:
			issues = append(issues, fmt.Sprintf("puzzle %s: unknown kind %q", name, p.Kind))
		}

		if (p.Input == "") == (p.File == "") {
			issues = append(issues, fmt.Sprintf("puzzle %s: needs exactly one of input or file", name))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Lookup finds a puzzle by name.
func (m *Manifest) Lookup(name string) (*Puzzle, bool) {
	for _, p := range m.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
