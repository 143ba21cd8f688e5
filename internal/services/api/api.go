// Package api provides the HTTP API for the application
package api

import (
	"tubecleanr/internal/platform/config"
	"tubecleanr/internal/platform/logger"
	phttp "tubecleanr/internal/platform/net/http"
	"tubecleanr/internal/platform/store"

	"tubecleanr/internal/modkit"
	"tubecleanr/internal/modkit/httpkit"
	"tubecleanr/internal/modkit/module"
	"tubecleanr/internal/modkit/swaggerkit"

	commentsmod "tubecleanr/internal/services/api/comments/module"
	metamod "tubecleanr/internal/services/api/meta/module"

	// Worker normalizer module (owns the Runner port)
	normmod "tubecleanr/internal/services/normalizer/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the WORKER normalizer module first and extract its ports
	normOpts := normmod.FromConfig(deps.Cfg)
	normalizer := normmod.New(deps, normOpts)
	nps := module.MustPortsOf[normmod.Ports](normalizer)

	// Inject the Runner into the comments API module
	comments := commentsmod.New(
		deps,
		modkit.WithPorts(commentsmod.Ports{
			Runner: nps.Runner,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Dict: nps.Dict})),
		normalizer, // include worker so its ports are registered
		comments,   // API module that depends on the worker's Runner
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
