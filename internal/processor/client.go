package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the external work processor over HTTP. Submissions are
// retried with exponential backoff; status queries are not (the poll cadence
// is owned by the tracker, one query per tick).
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

const (
	submitInitialInterval = 200 * time.Millisecond
	submitMaxElapsed      = 10 * time.Second

	requestsPerSecond = 20
	requestBurst      = 40
)

func CreateClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + "/api/v1/tasks/" + url.PathEscape(id)
}

// Submit sends one unit of work to the processor. Transport errors and 5xx
// responses are retried until the backoff budget runs out; 4xx responses are
// permanent. The Idempotency-Key header keeps retries from double-submitting.
func (c *Client) Submit(ctx context.Context, req *models.SubmitRequest) (*models.SubmitAccepted, error) {
	const funcName = "Client.Submit"
	logger.Debug("submitting task to processor",
		zap.String("function", funcName),
		zap.String("job_id", req.JobID),
		zap.String("kind", string(req.Kind)),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal submit request: %w", err)
	}

	idempotencyKey := uuid.NewString()
	var accepted models.SubmitAccepted

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/tasks", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			logger.Warn("submit attempt failed",
				zap.String("function", funcName),
				zap.String("job_id", req.JobID),
				zap.Error(err),
			)
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: submit returned %d", errs.ErrProcessorUnavailable, resp.StatusCode)
		case resp.StatusCode >= http.StatusBadRequest:
			return backoff.Permanent(fmt.Errorf("%w: submit returned %d", errs.ErrProcessorRejected, resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
			return backoff.Permanent(fmt.Errorf("decode submit response: %w", err))
		}

		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = submitInitialInterval
	bo.MaxElapsedTime = submitMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		logger.Error("failed to submit task",
			zap.String("function", funcName),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Info("task submitted",
		zap.String("function", funcName),
		zap.String("job_id", req.JobID),
		zap.String("task_id", accepted.TaskID),
		zap.String("status", string(accepted.Status)),
	)

	return &accepted, nil
}

func (c *Client) TaskStatus(ctx context.Context, id string) (*models.StatusResponse, error) {
	const funcName = "Client.TaskStatus"

	var status models.StatusResponse
	if err := c.getJSON(ctx, funcName, c.taskURL(id), &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *Client) BatchStatus(ctx context.Context, id string) (*models.BatchStatusResponse, error) {
	const funcName = "Client.BatchStatus"

	var status models.BatchStatusResponse
	if err := c.getJSON(ctx, funcName, c.taskURL(id)+"?kind=batch", &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *Client) getJSON(ctx context.Context, funcName, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrProcessorUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrTaskNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status query returned %d", errs.ErrProcessorUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("malformed status payload",
			zap.String("function", funcName),
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return fmt.Errorf("decode status response: %w", err)
	}

	return nil
}

// Cancel asks the processor to abort the underlying work. Best effort: the
// caller tears down local state regardless of the outcome.
func (c *Client) Cancel(ctx context.Context, id string) error {
	const funcName = "Client.Cancel"

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrProcessorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("cancel returned %d", resp.StatusCode)
	}

	logger.Info("remote cancel acknowledged",
		zap.String("function", funcName),
		zap.String("task_id", id),
	)

	return nil
}
