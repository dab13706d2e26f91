package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/funvibe/typeasserts/internal/config"
	"github.com/funvibe/typeasserts/internal/gohost"
)

// debounce groups the bursts of events editors produce on save.
const debounce = 200 * time.Millisecond

// watch re-runs the check whenever a Go file in a checked directory changes,
// until ctx is cancelled.
func watch(ctx context.Context, host *gohost.Host, dir string, patterns []string, p *printer, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]bool)
	recheck := func() {
		report, err := Check(ctx, host, dir, patterns, logger)
		if err != nil {
			logger.Error("check failed", "err", err)
			return
		}
		for _, d := range report.Dirs {
			if watched[d] {
				continue
			}
			if err := w.Add(d); err != nil {
				logger.Warn("cannot watch directory", "dir", d, "err", err)
				continue
			}
			watched[d] = true
		}
		p.print(report)
		fmt.Fprintf(p.w, "-- %d diagnostic(s), watching for changes\n", len(report.Diagnostics))
	}

	recheck()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case <-fire:
			fire = nil
			recheck()
		}
	}
}

// relevant reports whether ev can change a check result.
func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.HasSuffix(name, ".go") || name == "go.mod" {
		return true
	}
	return slices.Contains(config.ConfigFileNames, name)
}
