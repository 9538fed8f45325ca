package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
)

type trackedEntry struct {
	handle   *models.TaskHandle
	stop     func()
	released bool
}

// TaskRegistry is the in-memory record of poll sessions. The stop function
// of each entry tears its session down; the active counter limits how many
// sessions poll the processor at once.
type TaskRegistry struct {
	tasks       map[string]*trackedEntry
	activeTasks int
	maxTasks    int
	mu          sync.Mutex
}

func CreateTaskRegistry(maxTasks int) *TaskRegistry {
	return &TaskRegistry{
		tasks:    make(map[string]*trackedEntry),
		maxTasks: maxTasks,
	}
}

func (r *TaskRegistry) Track(ctx context.Context, handle *models.TaskHandle, stop func()) error {
	const funcName = "TaskRegistry.Track"
	logger.Debug("attempting to track task",
		zap.String("function", funcName),
		zap.String("task_id", handle.ID),
		zap.String("kind", string(handle.Kind)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeTasks >= r.maxTasks {
		logger.Warn("maximum tracked tasks limit reached",
			zap.String("function", funcName),
			zap.Int("active_tasks", r.activeTasks),
			zap.Int("max_tasks", r.maxTasks),
		)
		return fmt.Errorf("%w: current %d, max %d", errs.ErrMaxTasksReached, r.activeTasks, r.maxTasks)
	}

	r.tasks[handle.ID] = &trackedEntry{
		handle: handle,
		stop:   stop,
	}
	r.activeTasks++

	logger.Info("task tracked",
		zap.String("function", funcName),
		zap.String("task_id", handle.ID),
		zap.Int("active_tasks", r.activeTasks),
	)

	return nil
}

func (r *TaskRegistry) Get(ctx context.Context, id string) (*models.TaskHandle, error) {
	const funcName = "TaskRegistry.Get"

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.tasks[id]
	if !exists {
		logger.Warn("task not found",
			zap.String("function", funcName),
			zap.String("task_id", id),
		)
		return nil, errs.ErrTaskNotFound
	}

	// Callers get a snapshot; the handle itself is owned by the session.
	snapshot := *entry.handle
	return &snapshot, nil
}

func (r *TaskRegistry) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	const funcName = "TaskRegistry.UpdateStatus"

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.tasks[id]
	if !exists {
		return errs.ErrTaskNotFound
	}

	if entry.released {
		// The session already terminated; a late progress update is a no-op.
		return nil
	}

	oldStatus := entry.handle.Status
	entry.handle.Status = status

	logger.Debug("task status updated",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(status)),
	)

	return nil
}

// Complete records a terminal outcome and releases the session slot. For an
// attempt-budget timeout ready stays false: the remote task may still be
// running even though tracking stopped.
func (r *TaskRegistry) Complete(ctx context.Context, id string, status models.TaskStatus, ready bool, result json.RawMessage, errMsg string) error {
	const funcName = "TaskRegistry.Complete"

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.tasks[id]
	if !exists {
		return errs.ErrTaskNotFound
	}

	if entry.released {
		return nil
	}

	entry.handle.Status = status
	entry.handle.Ready = ready
	entry.handle.Result = result
	entry.handle.Error = errMsg
	r.release(entry)

	logger.Info("task completed",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.String("status", string(status)),
		zap.Bool("ready", ready),
		zap.Int("remaining_active_tasks", r.activeTasks),
	)

	return nil
}

// Revoke stops the task's session and marks it REVOKED. Idempotent: revoking
// an already-terminal task has no effect beyond the first call.
func (r *TaskRegistry) Revoke(ctx context.Context, id string) error {
	const funcName = "TaskRegistry.Revoke"

	r.mu.Lock()
	entry, exists := r.tasks[id]
	if !exists {
		r.mu.Unlock()
		return errs.ErrTaskNotFound
	}

	alreadyDone := entry.released
	if !alreadyDone {
		entry.handle.Status = models.StatusRevoked
		entry.handle.Error = errs.ErrTaskRevoked.Error()
		r.release(entry)
	}
	stop := entry.stop
	r.mu.Unlock()

	if alreadyDone {
		return nil
	}

	// The session's own teardown is idempotent, so calling stop outside the
	// lock is safe even if the session terminated in the meantime.
	if stop != nil {
		stop()
	}

	logger.Info("task revoked",
		zap.String("function", funcName),
		zap.String("task_id", id),
	)

	return nil
}

func (r *TaskRegistry) List(ctx context.Context) ([]*models.TrackedTask, error) {
	const funcName = "TaskRegistry.List"

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*models.TrackedTask, 0, len(r.tasks))
	for _, entry := range r.tasks {
		tasks = append(tasks, &models.TrackedTask{
			TaskID:    entry.handle.ID,
			Kind:      entry.handle.Kind,
			Status:    entry.handle.Status,
			Ready:     entry.handle.Ready,
			Error:     entry.handle.Error,
			CreatedAt: entry.handle.CreatedAt,
		})
	}

	logger.Debug("listed tracked tasks",
		zap.String("function", funcName),
		zap.Int("count", len(tasks)),
	)

	return tasks, nil
}

func (r *TaskRegistry) GetMaxTasks() int {
	return r.maxTasks
}

func (r *TaskRegistry) GetActiveTasksCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeTasks
}

// release must be called with the mutex held.
func (r *TaskRegistry) release(entry *trackedEntry) {
	if !entry.released {
		entry.released = true
		r.activeTasks--
	}
}
