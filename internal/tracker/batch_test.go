package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/stretchr/testify/assert"
)

func TestTrackBatch_ProgressAndCompletion(t *testing.T) {
	client := &scriptedClient{steps: []step{
		{batch: &models.BatchStatusResponse{
			Success:   true,
			Total:     10,
			Completed: 4,
			Failed:    1,
			Ready:     false,
			Results: []models.BatchItem{
				{TaskID: "sub-1", Status: models.StatusSuccess},
				{TaskID: "sub-2", Status: models.StatusFailure, Error: "unreadable pdf"},
			},
		}},
		{batch: &models.BatchStatusResponse{
			Success:   true,
			Total:     10,
			Completed: 10,
			Failed:    1,
			Ready:     true,
		}},
	}}

	poller := CreatePoller(client)
	session := poller.TrackBatch(context.Background(), "parent-1", Options{Interval: 5 * time.Millisecond, MaxAttempts: 50})

	events := collect(t, session)

	assert.Equal(t, 1, countType(events, EventProgress))
	assert.Equal(t, 2, client.callCount(), "session stops on the tick that reports ready")

	progress := events[0]
	assert.Equal(t, EventProgress, progress.Type)
	assert.Equal(t, 40, progress.Batch.Percentage)
	assert.Equal(t, 3, progress.Batch.Succeeded)
	assert.Len(t, progress.Batch.Results, 2)
	assert.Equal(t, "sub-1", progress.Batch.Results[0].TaskID)

	terminal := terminalOf(t, events)
	assert.Equal(t, EventSuccess, terminal.Type)
	assert.Equal(t, 100, terminal.Batch.Percentage)
	assert.Equal(t, 9, terminal.Batch.Succeeded)
}

func TestTrackBatch_ItemFailuresDoNotEndSession(t *testing.T) {
	allFailed := &models.BatchStatusResponse{
		Success:   true,
		Total:     2,
		Completed: 2,
		Failed:    2,
		Ready:     false,
		Results: []models.BatchItem{
			{TaskID: "sub-1", Status: models.StatusFailure, Error: "bad file"},
			{TaskID: "sub-2", Status: models.StatusFailure, Error: "bad file"},
		},
	}
	client := &scriptedClient{steps: []step{
		{batch: allFailed},
		{batch: allFailed},
		{batch: &models.BatchStatusResponse{
			Success:   true,
			Total:     2,
			Completed: 2,
			Failed:    2,
			Ready:     true,
		}},
	}}

	poller := CreatePoller(client)
	session := poller.TrackBatch(context.Background(), "parent-1", Options{Interval: 5 * time.Millisecond, MaxAttempts: 50})

	events := collect(t, session)

	assert.Equal(t, 3, client.callCount(), "only the parent ready flag ends the session")
	assert.Equal(t, EventSuccess, terminalOf(t, events).Type)
}

func TestTrackBatch_ParentFailure(t *testing.T) {
	client := &scriptedClient{steps: []step{
		{batch: &models.BatchStatusResponse{
			Success: false,
			Total:   5,
			Ready:   true,
		}},
	}}

	poller := CreatePoller(client)
	session := poller.TrackBatch(context.Background(), "parent-1", Options{Interval: 5 * time.Millisecond, MaxAttempts: 50})

	terminal := terminalOf(t, collect(t, session))

	assert.Equal(t, EventFailure, terminal.Type)
	assert.ErrorIs(t, terminal.Err, errs.ErrProcessorFailure)
}

func TestTrackBatch_PercentageRecomputedEveryTick(t *testing.T) {
	client := &scriptedClient{steps: []step{
		{batch: &models.BatchStatusResponse{Success: true, Total: 4, Completed: 3, Ready: false}},
		// The processor re-queued an item; the derived percentage must follow
		// the payload down, not increment monotonically.
		{batch: &models.BatchStatusResponse{Success: true, Total: 4, Completed: 1, Ready: false}},
		{batch: &models.BatchStatusResponse{Success: true, Total: 4, Completed: 4, Ready: true}},
	}}

	poller := CreatePoller(client)
	session := poller.TrackBatch(context.Background(), "parent-1", Options{Interval: 5 * time.Millisecond, MaxAttempts: 50})

	events := collect(t, session)

	assert.Equal(t, 2, countType(events, EventProgress))
	assert.Equal(t, 75, events[0].Batch.Percentage)
	assert.Equal(t, 25, events[1].Batch.Percentage)
	assert.Equal(t, 100, terminalOf(t, events).Batch.Percentage)
}
