package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app"
	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/app/projector"
	"github.com/michael0127/starplan-matcher/internal/tracker"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
)

// TrackingConfig carries the polling cadences the usecase hands to each
// session it starts. Zero values fall back to the tracker defaults.
type TrackingConfig struct {
	PollInterval      time.Duration
	BatchPollInterval time.Duration
	PollMaxAttempts   int
	SyncWaitBudget    time.Duration
	PollURLBase       string
}

type TaskUsecase struct {
	gateway  app.ProcessorGateway
	registry app.TaskRegistry
	poller   *tracker.Poller
	waiter   *tracker.Waiter
	cfg      TrackingConfig
}

func CreateTaskUsecase(gateway app.ProcessorGateway, registry app.TaskRegistry, cfg TrackingConfig) *TaskUsecase {
	if cfg.PollURLBase == "" {
		cfg.PollURLBase = "/api/v1/tasks"
	}
	return &TaskUsecase{
		gateway:  gateway,
		registry: registry,
		poller:   tracker.CreatePoller(gateway),
		waiter:   tracker.CreateWaiter(gateway),
		cfg:      cfg,
	}
}

func (u *TaskUsecase) pollURL(taskID string) string {
	return fmt.Sprintf("%s/%s/status", u.cfg.PollURLBase, taskID)
}

// SubmitRanking hands a ranking request to the processor and starts a poll
// session for the accepted task. The caller gets an immediate ack with the
// task id and the URL to poll.
func (u *TaskUsecase) SubmitRanking(ctx context.Context, req *models.RankingRequest) (*models.AsyncAck, error) {
	const funcName = "TaskUsecase.SubmitRanking"
	logger.Debug("submitting ranking task",
		zap.String("function", funcName),
		zap.String("job_id", req.JobID),
		zap.Int("candidates", len(req.CandidateIDs)),
	)

	accepted, err := u.gateway.Submit(ctx, &models.SubmitRequest{
		Kind:           models.KindSingle,
		JobID:          req.JobID,
		CandidateIDs:   req.CandidateIDs,
		SkipExtraction: req.SkipExtraction,
	})
	if err != nil {
		logger.Error("failed to submit ranking task",
			zap.String("function", funcName),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return nil, err
	}

	return u.startTracking(ctx, accepted, models.KindSingle)
}

// SubmitUpload submits a batch of file uploads. Tracking uses the batch
// cadence and interprets the status payload as batch-shaped.
func (u *TaskUsecase) SubmitUpload(ctx context.Context, req *models.UploadRequest) (*models.AsyncAck, error) {
	const funcName = "TaskUsecase.SubmitUpload"
	logger.Debug("submitting upload batch",
		zap.String("function", funcName),
		zap.String("job_id", req.JobID),
		zap.Int("files", len(req.FileURLs)),
	)

	accepted, err := u.gateway.Submit(ctx, &models.SubmitRequest{
		Kind:     models.KindBatch,
		JobID:    req.JobID,
		FileURLs: req.FileURLs,
	})
	if err != nil {
		logger.Error("failed to submit upload batch",
			zap.String("function", funcName),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return nil, err
	}

	return u.startTracking(ctx, accepted, models.KindBatch)
}

func (u *TaskUsecase) startTracking(ctx context.Context, accepted *models.SubmitAccepted, kind models.TaskKind) (*models.AsyncAck, error) {
	const funcName = "TaskUsecase.startTracking"

	status := accepted.Status
	if status == "" {
		status = models.StatusPending
	}

	handle := &models.TaskHandle{
		ID:        accepted.TaskID,
		Kind:      kind,
		Status:    status,
		CreatedAt: time.Now(),
	}

	// The session outlives the submitting request, so it runs on its own
	// context. The cancel function doubles as the registry's stop hook.
	sessionCtx, cancelSession := context.WithCancel(context.Background())

	if err := u.registry.Track(ctx, handle, cancelSession); err != nil {
		cancelSession()
		logger.Warn("tracking slot unavailable, cancelling accepted task",
			zap.String("function", funcName),
			zap.String("task_id", accepted.TaskID),
			zap.Error(err),
		)
		if cancelErr := u.gateway.Cancel(ctx, accepted.TaskID); cancelErr != nil {
			logger.Warn("failed to cancel untracked task",
				zap.String("function", funcName),
				zap.String("task_id", accepted.TaskID),
				zap.Error(cancelErr),
			)
		}
		return nil, err
	}

	var session *tracker.Session
	if kind == models.KindBatch {
		session = u.poller.TrackBatch(sessionCtx, accepted.TaskID, tracker.Options{
			Interval:    u.cfg.BatchPollInterval,
			MaxAttempts: u.cfg.PollMaxAttempts,
		})
	} else {
		session = u.poller.Track(sessionCtx, accepted.TaskID, tracker.Options{
			Interval:    u.cfg.PollInterval,
			MaxAttempts: u.cfg.PollMaxAttempts,
		})
	}

	go u.consume(session)

	return &models.AsyncAck{
		Success: true,
		Async:   true,
		TaskID:  accepted.TaskID,
		Status:  status,
		PollURL: u.pollURL(accepted.TaskID),
	}, nil
}

// consume drains a poll session and mirrors its events into the registry.
// It exits when the session closes its channel after the terminal event.
func (u *TaskUsecase) consume(session *tracker.Session) {
	const funcName = "TaskUsecase.consume"

	ctx := context.Background()
	taskID := session.TaskID()

	for event := range session.Events() {
		switch event.Type {
		case tracker.EventProgress:
			if err := u.registry.UpdateStatus(ctx, taskID, event.Status); err != nil {
				logger.Warn("failed to record progress",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		case tracker.EventSuccess:
			result := event.Result
			if event.Batch != nil {
				if encoded, err := json.Marshal(event.Batch); err == nil {
					result = encoded
				}
			}
			if err := u.registry.Complete(ctx, taskID, models.StatusSuccess, true, result, ""); err != nil {
				logger.Warn("failed to record success",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		case tracker.EventFailure:
			if err := u.registry.Complete(ctx, taskID, models.StatusFailure, true, event.Result, event.Err.Error()); err != nil {
				logger.Warn("failed to record failure",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		case tracker.EventTimeout:
			// The remote task may still be running: the status keeps its last
			// observed value and ready stays false.
			if err := u.registry.Complete(ctx, taskID, event.Status, false, nil, event.Err.Error()); err != nil {
				logger.Warn("failed to record timeout",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		case tracker.EventRevoked:
			if err := u.registry.Revoke(ctx, taskID); err != nil && !errors.Is(err, errs.ErrTaskNotFound) {
				logger.Warn("failed to record revocation",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		}
	}
}

// AwaitRanking submits a ranking task and blocks until it finishes or the
// wall-clock budget elapses. On timeout the task keeps running remotely and
// the outcome carries the poll URL as the continuation handle.
func (u *TaskUsecase) AwaitRanking(ctx context.Context, req *models.RankingRequest) (*models.SyncOutcome, error) {
	const funcName = "TaskUsecase.AwaitRanking"
	logger.Debug("submitting ranking task for synchronous wait",
		zap.String("function", funcName),
		zap.String("job_id", req.JobID),
	)

	accepted, err := u.gateway.Submit(ctx, &models.SubmitRequest{
		Kind:           models.KindSingle,
		JobID:          req.JobID,
		CandidateIDs:   req.CandidateIDs,
		SkipExtraction: req.SkipExtraction,
	})
	if err != nil {
		logger.Error("failed to submit ranking task",
			zap.String("function", funcName),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return nil, err
	}

	outcome := &models.SyncOutcome{
		TaskID:  accepted.TaskID,
		PollURL: u.pollURL(accepted.TaskID),
	}

	resp, err := u.waiter.Await(ctx, accepted.TaskID, u.cfg.PollInterval, u.cfg.SyncWaitBudget)
	if err != nil {
		if errors.Is(err, errs.ErrPollTimeout) {
			outcome.TimedOut = true
			return outcome, nil
		}
		return nil, err
	}

	if resp.Error != "" {
		outcome.Failed = true
		outcome.Error = resp.Error
		return outcome, nil
	}

	if msg, failed := models.EmbeddedFailure(resp.Result); failed {
		outcome.Failed = true
		outcome.Error = msg
		return outcome, nil
	}

	result, err := projector.Ranking(resp.Result)
	if err != nil {
		logger.Error("failed to project ranking result",
			zap.String("function", funcName),
			zap.String("task_id", accepted.TaskID),
			zap.Error(err),
		)
		return nil, err
	}

	outcome.Result = result
	return outcome, nil
}

// TaskStatus proxies the processor's view of a task, projecting a successful
// terminal result into the domain shape.
func (u *TaskUsecase) TaskStatus(ctx context.Context, id string) (*models.TaskView, error) {
	const funcName = "TaskUsecase.TaskStatus"

	resp, err := u.gateway.TaskStatus(ctx, id)
	if err != nil {
		logger.Error("failed to query task status",
			zap.String("function", funcName),
			zap.String("task_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	view := &models.TaskView{
		TaskID:   id,
		Status:   resp.Status,
		Ready:    resp.Ready,
		Progress: resp.Progress,
		Error:    resp.Error,
	}

	if resp.Ready && resp.Error == "" {
		if msg, failed := models.EmbeddedFailure(resp.Result); failed {
			view.Status = models.StatusFailure
			view.Error = msg
		} else if len(resp.Result) > 0 {
			result, projErr := projector.Ranking(resp.Result)
			if projErr != nil {
				logger.Warn("terminal result did not project, returning raw view",
					zap.String("function", funcName),
					zap.String("task_id", id),
					zap.Error(projErr),
				)
			} else {
				view.Result = result
			}
		}
	}

	return view, nil
}

func (u *TaskUsecase) BatchStatus(ctx context.Context, id string) (*models.BatchProgress, error) {
	const funcName = "TaskUsecase.BatchStatus"

	resp, err := u.gateway.BatchStatus(ctx, id)
	if err != nil {
		logger.Error("failed to query batch status",
			zap.String("function", funcName),
			zap.String("task_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return projector.BatchProgress(resp), nil
}

// CancelTask tears the local session down and asks the processor to revoke
// the task. The remote cancel is best effort: a failure there does not keep
// the local session alive.
func (u *TaskUsecase) CancelTask(ctx context.Context, id string) error {
	const funcName = "TaskUsecase.CancelTask"
	logger.Debug("cancelling task",
		zap.String("function", funcName),
		zap.String("task_id", id),
	)

	if err := u.gateway.Cancel(ctx, id); err != nil {
		logger.Warn("remote cancel failed, continuing local teardown",
			zap.String("function", funcName),
			zap.String("task_id", id),
			zap.Error(err),
		)
	}

	if err := u.registry.Revoke(ctx, id); err != nil {
		logger.Error("failed to revoke task",
			zap.String("function", funcName),
			zap.String("task_id", id),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (u *TaskUsecase) ListTasks(ctx context.Context) ([]*models.TrackedTask, error) {
	const funcName = "TaskUsecase.ListTasks"

	tasks, err := u.registry.List(ctx)
	if err != nil {
		logger.Error("failed to list tasks",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	return tasks, nil
}

func (u *TaskUsecase) GetMaxTasks() int {
	return u.registry.GetMaxTasks()
}

func (u *TaskUsecase) GetActiveTasksCount() int {
	return u.registry.GetActiveTasksCount()
}
