// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024 // clients only send control frames
	sendBuffer     = 64
)

// Stream pushes report progress events to one websocket client.
//
// Start runs a write pump and a read pump. The read pump exists to process
// pongs and to notice the client going away, which cancels the context
// returned by Start so an abandoned report generation stops fetching.
type Stream struct {
	conn      *websocket.Conn
	send      chan models.ReportProgress
	finish    chan struct{}
	finished  chan struct{}
	closeOnce sync.Once
	cancel    context.CancelFunc
}

// NewStream wraps an upgraded connection.
func NewStream(conn *websocket.Conn) *Stream {
	return &Stream{
		conn:     conn,
		send:     make(chan models.ReportProgress, sendBuffer),
		finish:   make(chan struct{}),
		finished: make(chan struct{}),
		cancel:   func() {},
	}
}

// Start launches the pumps. The returned context is canceled when the
// client disconnects or the stream is closed.
func (s *Stream) Start(ctx context.Context) context.Context {
	ctx, s.cancel = context.WithCancel(ctx)
	go s.writePump()
	go s.readPump()
	return ctx
}

// Send queues a progress event. Intermediate events are dropped when the
// client falls behind; done and error events are always delivered unless
// the connection is already gone.
func (s *Stream) Send(p models.ReportProgress) {
	if p.Stage == models.StageDone || p.Stage == models.StageError {
		select {
		case s.send <- p:
		case <-s.finished:
		}
		return
	}

	select {
	case s.send <- p:
	case <-s.finished:
	default:
		logging.Debug().Str("stage", p.Stage).Msg("progress event dropped, client is slow")
	}
}

// Close flushes queued events, sends a close frame and releases the
// connection. It is safe to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.finish)
		select {
		case <-s.finished:
		case <-time.After(writeWait):
		}
		s.cancel()
		_ = s.conn.Close() // best-effort cleanup
	})
}

// readPump discards client messages and cancels the stream context once
// the connection fails.
func (s *Stream) readPump() {
	defer s.cancel()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.Debug().Err(err).Msg("progress stream closed unexpectedly")
			}
			return
		}
	}
}

// writePump serializes writes to the connection, which gorilla/websocket
// requires.
func (s *Stream) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(s.finished)
	}()

	for {
		select {
		case p := <-s.send:
			if !s.write(p) {
				s.cancel()
				return
			}

		case <-s.finish:
			for {
				select {
				case p := <-s.send:
					if !s.write(p) {
						return
					}
				default:
					_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
					msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
					if err := s.conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
						logging.Debug().Err(err).Msg("failed to write close message")
					}
					return
				}
			}

		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.cancel()
				return
			}
		}
	}
}

func (s *Stream) write(p models.ReportProgress) bool {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}
	if err := s.conn.WriteJSON(p); err != nil {
		logging.Debug().Err(err).Msg("failed to write progress event")
		return false
	}
	return true
}
