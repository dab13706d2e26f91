// Package asserttype implements the checker plugin behind
// typeasserts.AssertType.
//
// The plugin hooks calls to the assertion primitive, compares the declared
// type argument with the inferred argument type and reports
//
//	assert_type failed. expected: '<expected>', actual '<actual>'
//
// when they differ, or
//
//	You must provide a type parameter to 'assert_type'
//
// when no type argument could be determined.
package asserttype

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/funvibe/typeasserts/internal/checker"
)

// Name is the registry name used in host configs.
const Name = "asserttype"

// DefaultSupportedVersions is the host checker range the plugin activates
// for. Earlier releases have no type parameters to hook.
const DefaultSupportedVersions = ">= 1.18"

func init() {
	checker.Register(Name, Plugin)
}

// Options configures a plugin factory.
type Options struct {
	// Targets are additional fully-qualified function names hooked besides
	// checker.AssertTypeFullname. They must have the same shape as
	// AssertType.
	Targets []string

	// SupportedVersions is a semver constraint on the host checker's
	// language version. Empty means DefaultSupportedVersions.
	SupportedVersions string

	// Logger receives activation decisions. Nil means slog.Default().
	Logger *slog.Logger
}

// AssertTypePlugin hooks a fixed set of fully-qualified call targets.
// It holds no state that changes between calls.
type AssertTypePlugin struct {
	targets map[string]bool
}

// New creates a plugin hooking checker.AssertTypeFullname and targets.
func New(targets ...string) *AssertTypePlugin {
	p := &AssertTypePlugin{targets: map[string]bool{checker.AssertTypeFullname: true}}
	for _, t := range targets {
		p.targets[t] = true
	}
	return p
}

// FunctionHook implements checker.Plugin.
func (p *AssertTypePlugin) FunctionHook(fullname string) checker.FunctionHook {
	if p.targets[fullname] {
		return Callback
	}
	return nil
}

// Plugin is the default factory: it activates for hosts within
// DefaultSupportedVersions and hooks only checker.AssertTypeFullname.
func Plugin(version string) checker.Plugin {
	f, err := NewFactory(Options{})
	if err != nil {
		panic(err)
	}
	return f(version)
}

// NewFactory returns a factory that gates activation on the host version.
func NewFactory(opts Options) (checker.Factory, error) {
	constraintStr := opts.SupportedVersions
	if constraintStr == "" {
		constraintStr = DefaultSupportedVersions
	}
	constraint, err := semver.NewConstraint(constraintStr)
	if err != nil {
		return nil, fmt.Errorf("parsing supported versions %q: %w", constraintStr, err)
	}
	for _, t := range opts.Targets {
		if !strings.Contains(t, ".") {
			return nil, fmt.Errorf("target %q is not a fully-qualified name", t)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	targets := append([]string(nil), opts.Targets...)

	return func(version string) checker.Plugin {
		lang := LanguageVersion(version)
		if lang == "" {
			logger.Debug("asserttype: unrecognized host version, not activating", "version", version)
			return nil
		}
		v, err := semver.NewVersion(lang)
		if err != nil {
			logger.Debug("asserttype: invalid host version, not activating", "version", version, "err", err)
			return nil
		}
		if !constraint.Check(v) {
			logger.Debug("asserttype: host version outside supported range, not activating",
				"version", version, "supported", constraintStr)
			return nil
		}
		return New(targets...)
	}, nil
}
