package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/michael0127/starplan-matcher/internal/app"
	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"github.com/michael0127/starplan-matcher/internal/utils/responses"
	"github.com/michael0127/starplan-matcher/internal/utils/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bulkSubmitTimeout = 10 * time.Second

type TaskDelivery struct {
	taskUsecase app.TaskUsecase
}

func CreateTaskDelivery(taskUsecase app.TaskUsecase) *TaskDelivery {
	return &TaskDelivery{
		taskUsecase: taskUsecase,
	}
}

// SubmitRanking accepts a ranking request and answers 202 immediately; the
// caller follows the poll URL in the ack to observe progress.
func (d *TaskDelivery) SubmitRanking(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitRanking"
	logger.Debug("submitting ranking task", zap.String("function", funcName))

	req := models.RankingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	ack, err := d.taskUsecase.SubmitRanking(r.Context(), &req)
	if err != nil {
		if errors.Is(err, errs.ErrMaxTasksReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":      err.Error(),
				"max_tasks":  d.taskUsecase.GetMaxTasks(),
				"active_now": d.taskUsecase.GetActiveTasksCount(),
				"suggestion": "Try again later or wait for current tasks to complete",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, ack, http.StatusAccepted)
}

// SubmitRankingBulk fans out independent ranking submissions. Each job gets
// its own task; per-job failures land in the item result instead of failing
// the whole request.
func (d *TaskDelivery) SubmitRankingBulk(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitRankingBulk"
	logger.Debug("submitting bulk ranking request", zap.String("function", funcName))

	req := models.BulkRankingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bulkSubmitTimeout)
	defer cancel()

	results := make([]models.BulkItemResult, len(req.Jobs))

	mu := sync.Mutex{}
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range req.Jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			ack, err := d.taskUsecase.SubmitRanking(ctx, &job)

			mu.Lock()
			defer mu.Unlock()

			item := models.BulkItemResult{JobID: job.JobID}
			if err != nil {
				item.Error = err.Error()
				logger.Warn("bulk item submission failed",
					zap.String("function", funcName),
					zap.String("job_id", job.JobID),
					zap.Error(err),
				)
			} else {
				item.TaskID = ack.TaskID
				item.PollURL = ack.PollURL
			}
			results[i] = item

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "processing error")
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":   len(results),
		"results": results,
	}, http.StatusOK)
}

// SubmitRankingSync blocks the request until the task finishes or the wait
// budget elapses. A timeout answers 408 with the poll URL so the caller can
// continue asynchronously; the task itself keeps running.
func (d *TaskDelivery) SubmitRankingSync(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitRankingSync"
	logger.Debug("submitting ranking task for synchronous wait", zap.String("function", funcName))

	req := models.RankingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	outcome, err := d.taskUsecase.AwaitRanking(r.Context(), &req)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if outcome.TimedOut {
		responses.DoJSONResponse(w, models.TimeoutResponse{
			Error:   "timeout",
			TaskID:  outcome.TaskID,
			Message: "Task is still running. Poll the status endpoint for the result.",
			PollURL: outcome.PollURL,
		}, http.StatusRequestTimeout)
		return
	}

	if outcome.Failed {
		responses.DoJSONResponse(w, map[string]any{
			"success": false,
			"task_id": outcome.TaskID,
			"error":   outcome.Error,
		}, http.StatusUnprocessableEntity)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"success": true,
		"task_id": outcome.TaskID,
		"result":  outcome.Result,
	}, http.StatusOK)
}

func (d *TaskDelivery) SubmitUpload(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitUpload"
	logger.Debug("submitting upload batch", zap.String("function", funcName))

	req := models.UploadRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	ack, err := d.taskUsecase.SubmitUpload(r.Context(), &req)
	if err != nil {
		if errors.Is(err, errs.ErrMaxTasksReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":      err.Error(),
				"max_tasks":  d.taskUsecase.GetMaxTasks(),
				"active_now": d.taskUsecase.GetActiveTasksCount(),
				"suggestion": "Try again later or wait for current tasks to complete",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, ack, http.StatusAccepted)
}

func (d *TaskDelivery) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.GetTaskStatus"
	logger.Debug("getting task status", zap.String("function", funcName))

	vars := mux.Vars(r)
	taskID := vars["id"]
	if err := validate.TaskID(taskID); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	view, err := d.taskUsecase.TaskStatus(r.Context(), taskID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, view, http.StatusOK)
}

func (d *TaskDelivery) GetBatchStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.GetBatchStatus"
	logger.Debug("getting batch status", zap.String("function", funcName))

	vars := mux.Vars(r)
	taskID := vars["id"]
	if err := validate.TaskID(taskID); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	progress, err := d.taskUsecase.BatchStatus(r.Context(), taskID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, progress, http.StatusOK)
}

func (d *TaskDelivery) CancelTask(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.CancelTask"
	logger.Debug("cancelling task", zap.String("function", funcName))

	vars := mux.Vars(r)
	taskID := vars["id"]
	if err := validate.TaskID(taskID); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := d.taskUsecase.CancelTask(r.Context(), taskID); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"success": true,
		"task_id": taskID,
		"status":  models.StatusRevoked,
	}, http.StatusOK)
}

func (d *TaskDelivery) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.GetAllTasks"
	logger.Debug("getting all tracked tasks", zap.String("function", funcName))

	tasks, err := d.taskUsecase.ListTasks(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if len(tasks) == 0 {
		responses.DoJSONResponse(w, map[string]any{
			"message":    "No tracked tasks",
			"suggestion": "Submit a ranking with POST /api/v1/rankings",
			"count":      0,
			"tasks":      []any{},
		}, http.StatusOK)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"count": len(tasks),
		"tasks": tasks,
	}, http.StatusOK)
}
