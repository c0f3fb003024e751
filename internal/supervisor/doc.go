// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package supervisor runs the long-lived parts of animerec under a suture v4
supervisor tree.

	animerec
	├── api-layer
	│   └── http-server        (services.HTTPServerService)
	└── background-layer
	    └── stats-reporter     (services.StatsReporterService)

Crashed services are restarted with suture's backoff. Canceling the context
passed to Serve stops every service; each supervisor waits up to
TreeConfig.ShutdownTimeout for its children.

Supervisor events (service panics, restarts, backoff) are logged through
log/slog. Pass logging.NewSlogLogger("supervisor") so they end up in the same
zerolog stream as everything else.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	err := <-tree.ServeBackground(ctx)
*/
package supervisor
