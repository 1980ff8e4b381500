// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package websocket streams report generation progress to the browser.

A Stream owns one gorilla/websocket connection and runs two goroutines:

  - writePump: writes queued progress events and periodic pings
  - readPump: handles pongs and detects the client going away

Messages are models.ReportProgress encoded as JSON:

	{"stage":"fetching","fetched":750}
	{"stage":"done","fetched":0}
	{"stage":"error","fetched":0,"code":"RECONNECT_REQUIRED","message":"..."}

Usage:

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
	    return
	}
	stream := websocket.NewStream(conn)
	ctx := stream.Start(r.Context())
	defer stream.Close()
	_, _ = reports.Generate(ctx, sessionID, token, req, stream.Send)
*/
package websocket
