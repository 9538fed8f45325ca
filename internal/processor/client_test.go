package processor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestClient_Submit_Success(t *testing.T) {
	var gotIdempotencyKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		gotIdempotencyKey = r.Header.Get("Idempotency-Key")

		var req models.SubmitRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "job-1", req.JobID)

		json.NewEncoder(w).Encode(models.SubmitAccepted{
			TaskID: "11111111-2222-3333-4444-555555555555",
			Status: models.StatusPending,
		})
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	accepted, err := client.Submit(context.Background(), &models.SubmitRequest{
		Kind:  models.KindSingle,
		JobID: "job-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", accepted.TaskID)
	assert.Equal(t, models.StatusPending, accepted.Status)
	assert.NotEmpty(t, gotIdempotencyKey)
}

func TestClient_Submit_RetriesOn5xx(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		mu.Unlock()
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(models.SubmitAccepted{TaskID: "t-1", Status: models.StatusPending})
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	accepted, err := client.Submit(context.Background(), &models.SubmitRequest{Kind: models.KindSingle, JobID: "job-1"})

	assert.NoError(t, err)
	assert.Equal(t, "t-1", accepted.TaskID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	for _, key := range keys {
		assert.Equal(t, keys[0], key, "retries must reuse the idempotency key")
	}
}

func TestClient_Submit_PermanentOn4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	_, err := client.Submit(context.Background(), &models.SubmitRequest{Kind: models.KindSingle, JobID: "job-1"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrProcessorRejected)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestClient_TaskStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks/abc", r.URL.Path)
		json.NewEncoder(w).Encode(models.StatusResponse{
			Success: true,
			Status:  models.StatusRanking,
			Ready:   false,
			Progress: &models.ProgressInfo{
				Stage:   "ranking",
				Current: 3,
				Total:   10,
			},
		})
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	status, err := client.TaskStatus(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusRanking, status.Status)
	assert.False(t, status.Ready)
	assert.Equal(t, 3, status.Progress.Current)
}

func TestClient_TaskStatus_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	_, err := client.TaskStatus(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestClient_BatchStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "batch", r.URL.Query().Get("kind"))
		json.NewEncoder(w).Encode(models.BatchStatusResponse{
			Success:   true,
			Total:     10,
			Completed: 4,
			Failed:    1,
			Ready:     false,
			Results: []models.BatchItem{
				{TaskID: "sub-1", Status: models.StatusSuccess},
				{TaskID: "sub-2", Status: models.StatusFailure, Error: "unreadable pdf"},
			},
		})
	}))
	defer server.Close()

	client := CreateClient(server.URL, 5*time.Second)
	status, err := client.BatchStatus(context.Background(), "parent")

	assert.NoError(t, err)
	assert.Equal(t, 10, status.Total)
	assert.Equal(t, 4, status.Completed)
	assert.Equal(t, 1, status.Failed)
	assert.Len(t, status.Results, 2)
	assert.Equal(t, "sub-1", status.Results[0].TaskID)
}

func TestClient_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantError  bool
	}{
		{
			name:       "Acknowledged",
			statusCode: http.StatusAccepted,
			wantError:  false,
		},
		{
			name:       "ProcessorError",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := CreateClient(server.URL, 5*time.Second)
			err := client.Cancel(context.Background(), "abc")

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
