// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Package validation validates request parameters using go-playground/validator v10.
//
// A singleton validator carries two custom tags:
//   - reportyear: a year between 2009 and next year
//   - sharetoken: 24 lowercase hex characters
//
// Failures convert to the VALIDATION_ERROR response shape:
//
//	q, verr := validation.ParseReportQuery(r.URL.Query().Get, cfg.ExcludeSensitive)
//	if verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
