// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount reads the sample count of a single histogram series.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a prometheus.Metric", o)
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/report", "200"))
	beforeCount := histogramCount(t, APIRequestDuration.WithLabelValues("GET", "/api/report"))

	RecordAPIRequest("GET", "/api/report", "200", 25*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/report", "200")); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
	if got := histogramCount(t, APIRequestDuration.WithLabelValues("GET", "/api/report")); got != beforeCount+1 {
		t.Errorf("api_request_duration_seconds count = %d, want %d", got, beforeCount+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests after dec = %v, want %v", got, before)
	}
}

func TestRecordFoursquareRequest(t *testing.T) {
	before := testutil.ToFloat64(FoursquareRequestsTotal.WithLabelValues("checkins", "429"))
	retriesBefore := testutil.ToFloat64(FoursquareRetries.WithLabelValues("checkins"))

	RecordFoursquareRequest("checkins", "429", 10*time.Millisecond)
	RecordFoursquareRetry("checkins")

	if got := testutil.ToFloat64(FoursquareRequestsTotal.WithLabelValues("checkins", "429")); got != before+1 {
		t.Errorf("foursquare_requests_total = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(FoursquareRetries.WithLabelValues("checkins")); got != retriesBefore+1 {
		t.Errorf("foursquare_retries_total = %v, want %v", got, retriesBefore+1)
	}
}

func TestRecordWrappedGeneration(t *testing.T) {
	tests := []struct {
		name      string
		errorType string
		err       error
		wantLabel string
	}{
		{name: "success"},
		{name: "no data", errorType: "no_data", err: errors.New("no check-ins"), wantLabel: "no_data"},
		{name: "unclassified", err: errors.New("boom"), wantLabel: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			okBefore := testutil.ToFloat64(WrappedReportsGenerated.WithLabelValues("2025"))
			errBefore := 0.0
			if tt.wantLabel != "" {
				errBefore = testutil.ToFloat64(WrappedReportGenerationErrors.WithLabelValues("2025", tt.wantLabel))
			}

			RecordWrappedGeneration(2025, time.Second, tt.errorType, tt.err)

			if tt.err == nil {
				if got := testutil.ToFloat64(WrappedReportsGenerated.WithLabelValues("2025")); got != okBefore+1 {
					t.Errorf("generated = %v, want %v", got, okBefore+1)
				}
				return
			}
			if got := testutil.ToFloat64(WrappedReportGenerationErrors.WithLabelValues("2025", tt.wantLabel)); got != errBefore+1 {
				t.Errorf("errors{%s} = %v, want %v", tt.wantLabel, got, errBefore+1)
			}
			if got := testutil.ToFloat64(WrappedReportsGenerated.WithLabelValues("2025")); got != okBefore {
				t.Errorf("generated changed on error: %v -> %v", okBefore, got)
			}
		})
	}
}

func TestRecordWrappedCacheAndShares(t *testing.T) {
	hits := testutil.ToFloat64(WrappedReportCacheHits.WithLabelValues("2024"))
	misses := testutil.ToFloat64(WrappedReportCacheMisses.WithLabelValues("2024"))
	created := testutil.ToFloat64(WrappedShareTokensCreated)
	accessed := testutil.ToFloat64(WrappedShareTokenAccess)

	RecordWrappedCacheHit(2024)
	RecordWrappedCacheMiss(2024)
	RecordWrappedCacheMiss(2024)
	RecordWrappedShareTokenCreated()
	RecordWrappedShareAccess()

	if got := testutil.ToFloat64(WrappedReportCacheHits.WithLabelValues("2024")); got != hits+1 {
		t.Errorf("cache hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(WrappedReportCacheMisses.WithLabelValues("2024")); got != misses+2 {
		t.Errorf("cache misses = %v, want %v", got, misses+2)
	}
	if got := testutil.ToFloat64(WrappedShareTokensCreated); got != created+1 {
		t.Errorf("shares created = %v, want %v", got, created+1)
	}
	if got := testutil.ToFloat64(WrappedShareTokenAccess); got != accessed+1 {
		t.Errorf("share access = %v, want %v", got, accessed+1)
	}
}

func TestRecordSessionLifecycle(t *testing.T) {
	active := testutil.ToFloat64(SessionsActive)
	destroyed := testutil.ToFloat64(SessionsDestroyed.WithLabelValues("expired"))

	RecordSessionCreated()
	RecordSessionCreated()
	RecordSessionDestroyed("expired", 2)
	RecordSessionDestroyed("expired", 0)

	if got := testutil.ToFloat64(SessionsActive); got != active {
		t.Errorf("sessions_active = %v, want %v", got, active)
	}
	if got := testutil.ToFloat64(SessionsDestroyed.WithLabelValues("expired")); got != destroyed+2 {
		t.Errorf("sessions_destroyed{expired} = %v, want %v", got, destroyed+2)
	}
}
