package errs

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrMaxTasksReached      = errors.New("server is busy (max tracked tasks limit)")
	ErrPollTimeout          = errors.New("polling timed out")
	ErrTaskRevoked          = errors.New("task was revoked")
	ErrProcessorFailure     = errors.New("processor reported failure")
	ErrProcessorRejected    = errors.New("processor rejected request")
	ErrProcessorUnavailable = errors.New("processor unavailable")
	ErrValidation           = errors.New("invalid request")
)
