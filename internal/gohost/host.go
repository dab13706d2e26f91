// Package gohost runs checker plugins on top of go/types.
//
// The go/types checker plays the host: its recorded inference results are
// wrapped as checker.Type values, every call whose callee a plugin claims is
// handed to the plugin's hook, and hook failures become analysis diagnostics.
package gohost

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/funvibe/typeasserts/internal/asserttype"
	"github.com/funvibe/typeasserts/internal/checker"
	"github.com/funvibe/typeasserts/internal/config"
)

// Host is the set of plugins active for one run. It is immutable after
// construction and safe to share between concurrent analysis passes.
type Host struct {
	version  string
	plugins  checker.Chain
	declined []string
}

// NewHost activates the plugins named in cfg for the host version.
func NewHost(cfg *config.Config, logger *slog.Logger) (*Host, error) {
	if logger == nil {
		logger = slog.Default()
	}

	version := cfg.HostVersion
	if version == "" {
		version = runtime.Version()
	}

	factory, err := asserttype.NewFactory(asserttype.Options{
		Targets:           cfg.Targets,
		SupportedVersions: cfg.SupportedVersions,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring %s: %w", asserttype.Name, err)
	}

	chain, declined, err := checker.Activate(cfg.Plugins, version, map[string]checker.Factory{
		asserttype.Name: factory,
	})
	if err != nil {
		if cfg.Path != "" {
			return nil, fmt.Errorf("%s: %w", cfg.Path, err)
		}
		return nil, err
	}
	for _, name := range declined {
		logger.Info("plugin declined activation for host version", "plugin", name, "version", version)
	}
	logger.Debug("host ready", "version", version, "active", len(chain), "declined", len(declined))

	return &Host{version: version, plugins: chain, declined: declined}, nil
}

// NewHostWithPlugins returns a host running the given plugins as-is.
func NewHostWithPlugins(version string, plugins ...checker.Plugin) *Host {
	return &Host{version: version, plugins: plugins}
}

// Version is the host checker version passed to plugin factories.
func (h *Host) Version() string { return h.version }

// Active reports whether any plugin accepted activation.
func (h *Host) Active() bool { return len(h.plugins) > 0 }

// Declined lists the plugins that declined activation.
func (h *Host) Declined() []string { return h.declined }
