// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package web renders the HTML pages and serves the embedded static assets.

Templates share a layout with head, content and scripts blocks. Pages never
carry inline script: the report map reads its points from a JSON data
element, which keeps the Content-Security-Policy free of unsafe-inline.
*/
package web
