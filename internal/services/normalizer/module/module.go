// Package module implements the normalizer module
package module

import (
	"net/http"

	"tubecleanr/internal/core/emojidict"
	"tubecleanr/internal/core/pipeline"
	"tubecleanr/internal/modkit"
	"tubecleanr/internal/modkit/httpkit"
	"tubecleanr/internal/services/normalizer/domain"
	"tubecleanr/internal/services/normalizer/repo"
	"tubecleanr/internal/services/normalizer/service"
)

// Ports exposed by the normalizer module
type Ports struct {
	Runner domain.RunnerPort
	Dict   *emojidict.Dict
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new normalizer module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("normalizer"),
	}, opts...)...)

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.DictPath != "" {
		cfg.DictPath = overrides.DictPath
	}
	// bool override wins (defaults false if caller didn't set)
	cfg.DryRun = cfg.DryRun || overrides.DryRun

	// Shared dictionary: embedded table plus any user CSV layered on top
	dict, err := emojidict.Load()
	if err != nil {
		panic(err)
	}
	if cfg.DictPath != "" {
		if err := dict.MergeFile(cfg.DictPath); err != nil {
			panic(err)
		}
	}

	runner := service.New(
		deps.PG,
		repo.NewPG(),
		pipeline.New(dict),
		service.Config{
			Workers: cfg.Workers,
			DryRun:  cfg.DryRun,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner, Dict: dict}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "normalizer" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
