// Package cli implements the typeasserts command: it loads Go packages, runs
// the asserttype analyzer over them and prints the diagnostics in
// "path:line:col: error: message" form.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/funvibe/typeasserts/internal/config"
	"github.com/funvibe/typeasserts/internal/gohost"
)

// ExitError carries the process exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ErrDiagnostics is returned when a check produced at least one diagnostic.
var ErrDiagnostics = errors.New("type assertions failed")

// Options are the command line settings.
type Options struct {
	ConfigPath string
	Dir        string
	Color      string
	Verbose    bool
	Watch      bool
}

// NewRootCmd builds the typeasserts command.
func NewRootCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "typeasserts [flags] [packages]",
		Short: "Verify typeasserts.AssertType calls against inferred types",
		Long: `typeasserts type-checks the given packages (default ./...) and verifies every
typeasserts.AssertType[T](value) call: the type the Go type checker inferred
for value must be identical to T.

Diagnostics are printed as path:line:col: error: message. Type errors the Go
type checker reports itself (such as a missing argument) are included.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to "+config.ConfigFileName+" (default: search upwards from -C)")
	flags.StringVarP(&opts.Dir, "dir", "C", ".", "directory to resolve package patterns in")
	flags.StringVar(&opts.Color, "color", "auto", "colorize output: auto, always or never")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log plugin activation and timing")
	flags.BoolVarP(&opts.Watch, "watch", "w", false, "re-check whenever a Go file changes")

	return cmd
}

// Main runs the command and returns the process exit status.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return config.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil && !errors.Is(exitErr.Err, ErrDiagnostics) {
			fmt.Fprintf(stderr, "Error: %s\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return config.ExitFailure
}

func run(ctx context.Context, opts Options, patterns []string, stdout, stderr io.Writer) error {
	color, err := useColor(opts.Color, stdout)
	if err != nil {
		return &ExitError{Code: config.ExitFailure, Err: err}
	}
	logger := newLogger(stderr, opts.Verbose)

	cfg, err := config.Resolve(opts.ConfigPath, opts.Dir)
	if err != nil {
		return &ExitError{Code: config.ExitFailure, Err: err}
	}
	if cfg.Path != "" {
		logger.Debug("using config", "path", cfg.Path)
	}

	host, err := gohost.NewHost(cfg, logger)
	if err != nil {
		return &ExitError{Code: config.ExitFailure, Err: err}
	}

	p := &printer{w: stdout, dir: opts.Dir, color: color}
	if opts.Watch {
		return watch(ctx, host, opts.Dir, patterns, p, logger)
	}

	report, err := Check(ctx, host, opts.Dir, patterns, logger)
	if err != nil {
		return &ExitError{Code: config.ExitFailure, Err: err}
	}
	p.print(report)
	if len(report.Diagnostics) > 0 {
		return &ExitError{Code: config.ExitDiagnostics, Err: ErrDiagnostics}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// useColor resolves the -color flag against the output stream.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid -color %q: want auto, always or never", mode)
	}
}
