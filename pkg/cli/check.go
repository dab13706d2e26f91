package cli

import (
	"context"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/tools/go/analysis"
	driver "golang.org/x/tools/go/analysis/checker"

	"github.com/funvibe/typeasserts/internal/config"
	"github.com/funvibe/typeasserts/internal/gohost"
	"github.com/funvibe/typeasserts/internal/loader"
)

// Source tells which part of the toolchain produced a diagnostic.
type Source string

const (
	SourceTypeCheck  Source = "typecheck"
	SourceAssertType Source = config.AnalyzerName
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Position token.Position
	Message  string
	Source   Source
}

// Report is the result of one check.
type Report struct {
	Diagnostics []Diagnostic

	// Dirs are the directories of the checked packages.
	Dirs []string
}

// Check loads the packages matching patterns in dir and runs the asserttype
// analyzer bound to host over them.
func Check(ctx context.Context, host *gohost.Host, dir string, patterns []string, logger *slog.Logger) (*Report, error) {
	start := time.Now()

	res, err := loader.Load(ctx, dir, patterns...)
	if err != nil {
		return nil, err
	}
	logger.Debug("packages loaded", "count", len(res.Packages), "problems", len(res.Problems), "elapsed", time.Since(start))

	report := &Report{Dirs: res.Dirs()}
	for _, p := range res.Problems {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Position: p.Position,
			Message:  p.Msg,
			Source:   SourceTypeCheck,
		})
	}

	a := gohost.NewAnalyzer(host)
	graph, err := driver.Analyze([]*analysis.Analyzer{a}, res.Packages, &driver.Options{})
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", a.Name, err)
	}
	for _, act := range graph.Roots {
		if act.Err != nil {
			return nil, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err)
		}
		for _, d := range act.Diagnostics {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Position: act.Package.Fset.Position(d.Pos),
				Message:  d.Message,
				Source:   SourceAssertType,
			})
		}
	}

	sortDiagnostics(report.Diagnostics)
	logger.Debug("check finished", "diagnostics", len(report.Diagnostics), "elapsed", time.Since(start))
	return report, nil
}

func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Position, diags[j].Position
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// printer writes diagnostics with paths relative to dir.
type printer struct {
	w     io.Writer
	dir   string
	color bool
}

func (p *printer) print(r *Report) {
	for _, d := range r.Diagnostics {
		fmt.Fprintln(p.w, p.format(d))
	}
}

func (p *printer) format(d Diagnostic) string {
	var b strings.Builder
	if d.Position.Filename != "" {
		b.WriteString(p.relative(d.Position.Filename))
		if d.Position.Line > 0 {
			fmt.Fprintf(&b, ":%d", d.Position.Line)
			if d.Position.Column > 0 {
				fmt.Fprintf(&b, ":%d", d.Position.Column)
			}
		}
		b.WriteString(": ")
	}
	if p.color {
		b.WriteString(ansiBold + ansiRed + "error:" + ansiReset)
	} else {
		b.WriteString("error:")
	}
	b.WriteString(" ")
	b.WriteString(d.Message)
	return b.String()
}

func (p *printer) relative(path string) string {
	base, err := filepath.Abs(p.dir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
