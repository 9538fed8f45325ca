// Package tracker drives poll sessions against the external work processor.
// A session owns one task handle: it queries the processor on a fixed
// cadence, emits progress events, and delivers exactly one terminal event
// (success, failure, timeout or revoked) before closing its channel.
package tracker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app/models"
)

const (
	DefaultInterval      = 2000 * time.Millisecond
	DefaultBatchInterval = 2500 * time.Millisecond
	DefaultMaxAttempts   = 150
	DefaultSyncBudget    = 5 * time.Minute

	// One slot of the event buffer is reserved for the terminal event so it
	// can never be dropped; progress events are dropped when the consumer
	// lags (the contract is zero or more).
	eventBuffer = 16
)

// StatusClient is the slice of the processor gateway a poll session needs.
type StatusClient interface {
	TaskStatus(ctx context.Context, id string) (*models.StatusResponse, error)
	BatchStatus(ctx context.Context, id string) (*models.BatchStatusResponse, error)
}

type EventType string

const (
	EventProgress EventType = "progress"
	EventSuccess  EventType = "success"
	EventFailure  EventType = "failure"
	EventTimeout  EventType = "timeout"
	EventRevoked  EventType = "revoked"
)

type Event struct {
	Type     EventType
	Status   models.TaskStatus
	Progress *models.ProgressInfo
	Batch    *models.BatchProgress
	Result   json.RawMessage
	Err      error
}

func (e Event) Terminal() bool {
	return e.Type != EventProgress
}

// Options configures one poll session. Zero values fall back to the
// package defaults; call sites with different cadences pass them explicitly.
type Options struct {
	Interval    time.Duration
	MaxAttempts int
}

func (o Options) withDefaults(batch bool) Options {
	if o.Interval <= 0 {
		if batch {
			o.Interval = DefaultBatchInterval
		} else {
			o.Interval = DefaultInterval
		}
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return o
}

// Session is a live poll session. Events() yields zero or more progress
// events followed by exactly one terminal event; the channel is closed once
// the session ends. Stop is idempotent and safe from any goroutine.
type Session struct {
	taskID   string
	events   chan Event
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

func (s *Session) TaskID() string {
	return s.taskID
}

func (s *Session) Events() <-chan Event {
	return s.events
}

// Done is closed when the session goroutine has fully exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Stop() {
	s.stopOnce.Do(s.cancel)
}

// emitProgress never blocks; a progress event is dropped when the buffer is
// down to its reserved terminal slot.
func (s *Session) emitProgress(ev Event) {
	if len(s.events) >= cap(s.events)-1 {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

// emitTerminal always has buffer space: progress emission keeps one slot
// free and each session sends exactly one terminal event.
func (s *Session) emitTerminal(ev Event) {
	s.events <- ev
}
