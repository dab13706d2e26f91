// Package loader loads Go packages with full syntax and type information for
// the asserttype host.
package loader

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Mode is the go/packages load mode required by the analysis driver.
const Mode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedTypesSizes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedModule

// Problem is a diagnostic the Go toolchain or type checker itself reported
// for a root package, such as a missing argument.
type Problem struct {
	// Position is the parsed location; Filename is empty when unknown.
	Position token.Position

	// Msg is the error text.
	Msg string

	// Kind distinguishes list, parse and type errors.
	Kind packages.ErrorKind
}

// Result holds the loaded root packages and their own problems.
type Result struct {
	// Packages are the root packages matched by the patterns.
	Packages []*packages.Package

	// Problems are the errors recorded on the root packages.
	Problems []Problem
}

// Load loads the packages matching patterns relative to dir. Type errors do
// not fail the load: they are returned as Problems so that analysis can
// still run on the partially checked packages.
func Load(ctx context.Context, dir string, patterns ...string) (*Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    Mode,
		Dir:     dir,
		Env:     os.Environ(),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %s", strings.Join(patterns, " "))
	}

	res := &Result{Packages: pkgs}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			res.Problems = append(res.Problems, Problem{
				Position: ParsePosition(e.Pos),
				Msg:      e.Msg,
				Kind:     e.Kind,
			})
		}
	}
	return res, nil
}

// Dirs returns the sorted, de-duplicated directories holding the root
// packages' Go files.
func (r *Result) Dirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, pkg := range r.Packages {
		for _, f := range pkg.GoFiles {
			d := filepath.Dir(f)
			if !seen[d] {
				seen[d] = true
				dirs = append(dirs, d)
			}
		}
	}
	sort.Strings(dirs)
	return dirs
}

// ParsePosition parses the "file:line:col" form used by packages.Error.
// A missing column or line is left zero; "" and "-" give the zero Position.
func ParsePosition(s string) token.Position {
	if s == "" || s == "-" {
		return token.Position{}
	}

	var nums []int
	rest := s
	for len(nums) < 2 {
		i := strings.LastIndex(rest, ":")
		if i < 0 {
			break
		}
		n, err := strconv.Atoi(rest[i+1:])
		if err != nil {
			break
		}
		nums = append(nums, n)
		rest = rest[:i]
	}

	pos := token.Position{Filename: rest}
	switch len(nums) {
	case 1:
		pos.Line = nums[0]
	case 2:
		pos.Line, pos.Column = nums[1], nums[0]
	}
	return pos
}
