package app

import (
	"context"
	"encoding/json"

	"github.com/michael0127/starplan-matcher/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// ProcessorGateway is the HTTP boundary to the external work processor.
type ProcessorGateway interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.SubmitAccepted, error)
	TaskStatus(ctx context.Context, id string) (*models.StatusResponse, error)
	BatchStatus(ctx context.Context, id string) (*models.BatchStatusResponse, error)
	Cancel(ctx context.Context, id string) error
}

// TaskRegistry tracks the handles owned by active poll sessions. A tracked
// handle occupies one slot until its session reaches a terminal state.
type TaskRegistry interface {
	Track(ctx context.Context, handle *models.TaskHandle, stop func()) error
	Get(ctx context.Context, id string) (*models.TaskHandle, error)
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error
	Complete(ctx context.Context, id string, status models.TaskStatus, ready bool, result json.RawMessage, errMsg string) error
	Revoke(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.TrackedTask, error)
	GetMaxTasks() int
	GetActiveTasksCount() int
}

type TaskUsecase interface {
	SubmitRanking(ctx context.Context, req *models.RankingRequest) (*models.AsyncAck, error)
	SubmitUpload(ctx context.Context, req *models.UploadRequest) (*models.AsyncAck, error)
	AwaitRanking(ctx context.Context, req *models.RankingRequest) (*models.SyncOutcome, error)
	TaskStatus(ctx context.Context, id string) (*models.TaskView, error)
	BatchStatus(ctx context.Context, id string) (*models.BatchProgress, error)
	CancelTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]*models.TrackedTask, error)
	GetMaxTasks() int
	GetActiveTasksCount() int
}
