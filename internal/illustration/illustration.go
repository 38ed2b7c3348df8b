// Package illustration supplies structure diagrams for substances.
//
// Diagrams are looked up by formula. Only formulas in the allow-list are ever
// illustrated; callers fall back to the substance's textual structure
// description when no diagram is available.
package illustration

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chemiz/chemiz/internal/answer"
)

//go:embed art/*.txt
var artFS embed.FS

// allowList holds the normalized formulas that have diagrams.
var allowList = map[string]string{
	"H2O":  "h2o",
	"CO2":  "co2",
	"NH3":  "nh3",
	"C2H4": "c2h4",
	"C2H2": "c2h2",
	"HCHO": "hcho",
	"HCN":  "hcn",
}

// Allowed reports whether formula is in the allow-list of illustratable
// formulas.
func Allowed(formula string) bool {
	_, ok := allowList[answer.NormalizeFormula(formula)]
	return ok
}

// AllowedFormulas returns the allow-listed formulas.
func AllowedFormulas() []string {
	out := make([]string, 0, len(allowList))
	for f := range allowList {
		out = append(out, f)
	}
	return out
}

// Handle is an opaque reference to a renderable diagram.
type Handle struct {
	key string
	art string
}

// Key returns the normalized formula the diagram belongs to.
func (h Handle) Key() string {
	return h.key
}

// Render returns the diagram as text.
func (h Handle) Render() string {
	return h.art
}

// Provider resolves a formula to a diagram.
type Provider interface {
	Lookup(formula string) (Handle, bool)
}

// Embedded serves the diagrams compiled into the binary.
type Embedded struct{}

var _ Provider = Embedded{}

func (Embedded) Lookup(formula string) (Handle, bool) {
	key := answer.NormalizeFormula(formula)
	name, ok := allowList[key]
	if !ok {
		return Handle{}, false
	}
	data, err := fs.ReadFile(artFS, "art/"+name+".txt")
	if err != nil {
		return Handle{}, false
	}
	return Handle{key: key, art: strings.TrimRight(string(data), "\n")}, true
}

// Dir serves diagrams from <Root>/<formula>.txt, formula in lower case.
// It honours the allow-list.
type Dir struct {
	Root string
}

var _ Provider = Dir{}

func (d Dir) Lookup(formula string) (Handle, bool) {
	key := answer.NormalizeFormula(formula)
	name, ok := allowList[key]
	if !ok || d.Root == "" {
		return Handle{}, false
	}
	data, err := os.ReadFile(filepath.Join(d.Root, name+".txt"))
	if err != nil {
		return Handle{}, false
	}
	return Handle{key: key, art: strings.TrimRight(string(data), "\n")}, true
}

// Chain tries each provider in order and returns the first hit.
type Chain []Provider

var _ Provider = Chain(nil)

func (c Chain) Lookup(formula string) (Handle, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if h, ok := p.Lookup(formula); ok {
			return h, true
		}
	}
	return Handle{}, false
}

// ErrNotDir is returned by NewDir when root is not a directory.
var ErrNotDir = errors.New("illustration path is not a directory")

// NewDir checks that root exists and is a directory.
func NewDir(root string) (Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Dir{}, err
	}
	if !info.IsDir() {
		return Dir{}, ErrNotDir
	}
	return Dir{Root: root}, nil
}

// Default returns the provider used when nothing is configured: the
// embedded diagrams, optionally overridden by files in dir.
func Default(dir string) (Provider, error) {
	if dir == "" {
		return Embedded{}, nil
	}
	d, err := NewDir(dir)
	if err != nil {
		return nil, err
	}
	return Chain{d, Embedded{}}, nil
}
