package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/app/projector"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
)

// Poller creates poll sessions. The session goroutine issues queries
// strictly sequentially: the next query is never sent before the previous
// response (or its absence) has been handled.
type Poller struct {
	client StatusClient
}

func CreatePoller(client StatusClient) *Poller {
	return &Poller{
		client: client,
	}
}

// Track starts a poll session for a single task. The first query is issued
// immediately; subsequent queries follow the configured cadence.
func (p *Poller) Track(ctx context.Context, taskID string, opts Options) *Session {
	return p.track(ctx, taskID, opts.withDefaults(false), false)
}

// TrackBatch starts a poll session that interprets the payload as
// batch-shaped and recomputes aggregate progress on every tick. Only the
// parent's ready flag ends the session; item statuses are informational.
func (p *Poller) TrackBatch(ctx context.Context, taskID string, opts Options) *Session {
	return p.track(ctx, taskID, opts.withDefaults(true), true)
}

func (p *Poller) track(ctx context.Context, taskID string, opts Options, batch bool) *Session {
	sessionCtx, cancel := context.WithCancel(ctx)
	session := &Session{
		taskID: taskID,
		events: make(chan Event, eventBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run(sessionCtx, session, opts, batch)

	return session
}

func (p *Poller) run(ctx context.Context, s *Session, opts Options, batch bool) {
	const funcName = "Poller.run"
	defer close(s.done)
	defer close(s.events)
	defer s.cancel()

	logger.Debug("poll session started",
		zap.String("function", funcName),
		zap.String("task_id", s.taskID),
		zap.Bool("batch", batch),
		zap.Duration("interval", opts.Interval),
		zap.Int("max_attempts", opts.MaxAttempts),
	)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	attempts := 0
	lastStatus := models.StatusPending

	for {
		attempts++

		var terminal *Event
		if batch {
			terminal, lastStatus = p.queryBatch(ctx, s, lastStatus)
		} else {
			terminal, lastStatus = p.querySingle(ctx, s, lastStatus)
		}

		if ctx.Err() != nil {
			// Cancelled while the query was in flight: whatever came back is
			// discarded, the only event left to deliver is the revocation.
			s.emitTerminal(Event{
				Type:   EventRevoked,
				Status: models.StatusRevoked,
				Err:    errs.ErrTaskRevoked,
			})
			return
		}

		if terminal != nil {
			logger.Info("poll session reached terminal state",
				zap.String("function", funcName),
				zap.String("task_id", s.taskID),
				zap.String("event", string(terminal.Type)),
				zap.Int("attempts", attempts),
			)
			s.emitTerminal(*terminal)
			return
		}

		if attempts >= opts.MaxAttempts {
			logger.Warn("poll session exhausted attempt budget",
				zap.String("function", funcName),
				zap.String("task_id", s.taskID),
				zap.Int("attempts", attempts),
			)
			s.emitTerminal(Event{
				Type:   EventTimeout,
				Status: lastStatus,
				Err:    fmt.Errorf("%w: task %s not ready after %d attempts", errs.ErrPollTimeout, s.taskID, attempts),
			})
			return
		}

		select {
		case <-ctx.Done():
			s.emitTerminal(Event{
				Type:   EventRevoked,
				Status: models.StatusRevoked,
				Err:    errs.ErrTaskRevoked,
			})
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) querySingle(ctx context.Context, s *Session, last models.TaskStatus) (*Event, models.TaskStatus) {
	const funcName = "Poller.querySingle"

	resp, err := p.client.TaskStatus(ctx, s.taskID)
	if err != nil {
		if ctx.Err() == nil {
			// Transient: the processor is presumed still working, the
			// session survives to the next tick.
			logger.Warn("status query failed, keeping session alive",
				zap.String("function", funcName),
				zap.String("task_id", s.taskID),
				zap.Error(err),
			)
		}
		return nil, last
	}

	if ctx.Err() != nil {
		return nil, last
	}

	if !resp.Ready {
		status := resp.Status
		if status == "" {
			status = last
		}
		s.emitProgress(Event{
			Type:     EventProgress,
			Status:   status,
			Progress: resp.Progress,
		})
		return nil, status
	}

	if resp.Error != "" {
		return &Event{
			Type:   EventFailure,
			Status: models.StatusFailure,
			Err:    fmt.Errorf("%w: %s", errs.ErrProcessorFailure, resp.Error),
		}, models.StatusFailure
	}

	if msg, failed := models.EmbeddedFailure(resp.Result); failed {
		return &Event{
			Type:   EventFailure,
			Status: models.StatusFailure,
			Result: resp.Result,
			Err:    fmt.Errorf("%w: %s", errs.ErrProcessorFailure, msg),
		}, models.StatusFailure
	}

	return &Event{
		Type:   EventSuccess,
		Status: models.StatusSuccess,
		Result: resp.Result,
	}, models.StatusSuccess
}

func (p *Poller) queryBatch(ctx context.Context, s *Session, last models.TaskStatus) (*Event, models.TaskStatus) {
	const funcName = "Poller.queryBatch"

	resp, err := p.client.BatchStatus(ctx, s.taskID)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("batch status query failed, keeping session alive",
				zap.String("function", funcName),
				zap.String("task_id", s.taskID),
				zap.Error(err),
			)
		}
		return nil, last
	}

	if ctx.Err() != nil {
		return nil, last
	}

	progress := projector.BatchProgress(resp)

	if !resp.Ready {
		s.emitProgress(Event{
			Type:   EventProgress,
			Status: models.StatusProgress,
			Batch:  progress,
		})
		return nil, models.StatusProgress
	}

	if !resp.Success {
		return &Event{
			Type:   EventFailure,
			Status: models.StatusFailure,
			Batch:  progress,
			Err:    fmt.Errorf("%w: batch task failed", errs.ErrProcessorFailure),
		}, models.StatusFailure
	}

	return &Event{
		Type:   EventSuccess,
		Status: models.StatusSuccess,
		Batch:  progress,
	}, models.StatusSuccess
}
