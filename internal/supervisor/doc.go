// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Package supervisor provides suture-based process supervision.
//
// The tree has two layers under the root:
//
//	swarmwrapped
//	├── api-layer          HTTP server
//	└── maintenance-layer  session janitor, report cache janitor
//
// Supervisor events are logged through sutureslog, which writes to the
// zerolog logger via logging.NewSlogLogger:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
//	tree.AddMaintenanceService(services.NewJanitorService("session-janitor", time.Minute, cleanup))
//	err = tree.Serve(ctx)
package supervisor
