package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
)

// Waiter blocks a request/response caller for up to a wall-clock budget
// while an asynchronous task completes. On timeout the remote task keeps
// running; the caller falls back to polling with the task id.
type Waiter struct {
	client StatusClient
}

func CreateWaiter(client StatusClient) *Waiter {
	return &Waiter{
		client: client,
	}
}

// Await polls until the task is ready or the budget elapses. A timeout is
// reported as errs.ErrPollTimeout, never as a processor failure; the task is
// not cancelled. Queries run strictly sequentially on the given interval.
func (w *Waiter) Await(ctx context.Context, taskID string, interval, budget time.Duration) (*models.StatusResponse, error) {
	const funcName = "Waiter.Await"

	if interval <= 0 {
		interval = DefaultInterval
	}
	if budget <= 0 {
		budget = DefaultSyncBudget
	}

	deadline := time.Now().Add(budget)
	attempts := 0

	for {
		attempts++

		resp, err := w.client.TaskStatus(ctx, taskID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("status query failed during synchronous wait",
				zap.String("function", funcName),
				zap.String("task_id", taskID),
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
		} else if resp.Ready {
			logger.Info("synchronous wait completed",
				zap.String("function", funcName),
				zap.String("task_id", taskID),
				zap.Int("attempts", attempts),
			)
			return resp, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}

		wait := interval
		if wait > remaining {
			wait = remaining
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		if !time.Now().Before(deadline) {
			break
		}
	}

	logger.Warn("synchronous wait budget elapsed, task continues remotely",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.Duration("budget", budget),
	)

	return nil, fmt.Errorf("%w: task %s not ready within %s", errs.ErrPollTimeout, taskID, budget)
}
