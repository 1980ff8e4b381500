// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package audit

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/logging"
)

// Config holds configuration for the audit logger.
type Config struct {
	// Enabled controls whether audit logging is active.
	Enabled bool

	// Retention is how long events are kept before CleanupExpired drops them.
	Retention time.Duration

	// BufferSize is the size of the async write buffer.
	BufferSize int

	// MaxEvents bounds the in-memory store.
	MaxEvents int

	// LogToStdout also writes events through the application logger.
	LogToStdout bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		Retention:   7 * 24 * time.Hour,
		BufferSize:  1000,
		MaxEvents:   10000,
		LogToStdout: false,
	}
}

// ConfigFrom maps the security section of the application config.
func ConfigFrom(cfg config.SecurityConfig) *Config {
	c := DefaultConfig()
	c.Enabled = cfg.AuditEnabled
	if cfg.AuditRetention > 0 {
		c.Retention = cfg.AuditRetention
	}
	c.LogToStdout = cfg.AuditLogToStdout
	return c
}

// Logger records audit events asynchronously. A nil *Logger is valid and
// discards everything.
type Logger struct {
	config    *Config
	store     Store
	eventChan chan *Event
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	now       func() time.Time
}

// NewLogger creates a new audit logger and starts its writer.
func NewLogger(store Store, cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if store == nil {
		store = NewMemoryStore(cfg.MaxEvents)
	}

	l := &Logger{
		config:    cfg,
		store:     store,
		eventChan: make(chan *Event, max(cfg.BufferSize, 1)),
		stopChan:  make(chan struct{}),
		now:       time.Now,
	}

	l.wg.Add(1)
	go l.asyncWriter()

	return l
}

// asyncWriter processes events from the buffer.
func (l *Logger) asyncWriter() {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopChan:
			for {
				select {
				case event := <-l.eventChan:
					l.writeEvent(event)
				default:
					return
				}
			}
		case event := <-l.eventChan:
			l.writeEvent(event)
		}
	}
}

func (l *Logger) writeEvent(event *Event) {
	if l.config.LogToStdout {
		data, err := json.Marshal(event)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to marshal audit event")
		} else {
			logging.Info().RawJSON("event", data).Msg("Audit event")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.store.Save(ctx, event); err != nil {
		logging.Error().Err(err).Msg("Failed to save audit event")
	}
}

// Log records an audit event. It never blocks; a full buffer drops the event.
func (l *Logger) Log(event *Event) {
	if l == nil || !l.config.Enabled {
		return
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = l.now()
	}

	select {
	case l.eventChan <- event:
	default:
		logging.Warn().Str("event_id", event.ID).Msg("Audit event buffer full, dropping event")
	}
}

// Close drains buffered events and stops the writer.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.stopOnce.Do(func() { close(l.stopChan) })
	l.wg.Wait()
	return nil
}

// Query retrieves events matching the filter.
func (l *Logger) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	return l.store.Query(ctx, filter)
}

// CleanupExpired drops events older than the retention period. It matches
// the maintenance janitor's cleanup signature.
func (l *Logger) CleanupExpired(ctx context.Context) (int, error) {
	deleted, err := l.store.Delete(ctx, l.now().Add(-l.config.Retention))
	return int(deleted), err
}

// LogConnected records a completed OAuth connect.
func (l *Logger) LogConnected(ctx context.Context, actor Actor, source Source) {
	l.Log(&Event{
		Type:        EventTypeConnected,
		Severity:    SeverityInfo,
		Outcome:     OutcomeSuccess,
		Actor:       actor,
		Source:      source,
		Action:      "connect",
		Description: "Foursquare account connected",
		RequestID:   logging.RequestIDFromContext(ctx),
	})
}

// LogConnectFailed records an OAuth callback that did not produce a session.
func (l *Logger) LogConnectFailed(ctx context.Context, source Source, reason string) {
	l.Log(&Event{
		Type:        EventTypeConnectFailed,
		Severity:    SeverityWarning,
		Outcome:     OutcomeFailure,
		Source:      source,
		Action:      "connect",
		Description: "Connect failed: " + reason,
		Metadata:    mustJSON(map[string]string{"reason": reason}),
		RequestID:   logging.RequestIDFromContext(ctx),
	})
}

// LogDisconnected records a visitor-initiated disconnect.
func (l *Logger) LogDisconnected(ctx context.Context, actor Actor, source Source, purged int) {
	l.Log(&Event{
		Type:        EventTypeDisconnected,
		Severity:    SeverityInfo,
		Outcome:     OutcomeSuccess,
		Actor:       actor,
		Source:      source,
		Action:      "disconnect",
		Description: "Session destroyed and cached data purged",
		Metadata:    mustJSON(map[string]int{"purged_entries": purged}),
		RequestID:   logging.RequestIDFromContext(ctx),
	})
}

// LogSessionRevoked records a session dropped because the provider rejected
// its token.
func (l *Logger) LogSessionRevoked(ctx context.Context, actor Actor, source Source, reason string) {
	l.Log(&Event{
		Type:        EventTypeSessionRevoked,
		Severity:    SeverityWarning,
		Outcome:     OutcomeSuccess,
		Actor:       actor,
		Source:      source,
		Action:      "revoke",
		Description: "Session revoked: " + reason,
		Metadata:    mustJSON(map[string]string{"reason": reason}),
		RequestID:   logging.RequestIDFromContext(ctx),
	})
}

// LogReportShared records a share link being issued.
func (l *Logger) LogReportShared(ctx context.Context, actor Actor, source Source, year int, expiresAt time.Time) {
	l.Log(&Event{
		Type:        EventTypeReportShared,
		Severity:    SeverityInfo,
		Outcome:     OutcomeSuccess,
		Actor:       actor,
		Source:      source,
		Action:      "share",
		Description: "Report share link issued",
		Metadata: mustJSON(map[string]interface{}{
			"year":       year,
			"expires_at": expiresAt,
		}),
		RequestID: logging.RequestIDFromContext(ctx),
	})
}

// mustJSON converts a value to JSON, returning an empty object on error.
func mustJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}

// SourceFromRequest creates a Source from an HTTP request. RemoteAddr has
// already been rewritten by the real-IP middleware.
func SourceFromRequest(r *http.Request) Source {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return Source{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}
