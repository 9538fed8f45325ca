package models

import (
	"encoding/json"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusStarted    TaskStatus = "STARTED"
	StatusProgress   TaskStatus = "PROGRESS"
	StatusExtracting TaskStatus = "EXTRACTING"
	StatusAnalyzing  TaskStatus = "ANALYZING"
	StatusRanking    TaskStatus = "RANKING"
	StatusMatching   TaskStatus = "MATCHING"
	StatusSuccess    TaskStatus = "SUCCESS"
	StatusFailure    TaskStatus = "FAILURE"
	StatusRevoked    TaskStatus = "REVOKED"
)

// Busy reports whether the status is a non-terminal label. Phase statuses
// (EXTRACTING, ANALYZING, RANKING, MATCHING) are plain busy states: the poller
// never branches on them, only on the ready flag.
func (s TaskStatus) Busy() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusRevoked:
		return false
	default:
		return true
	}
}

type TaskKind string

const (
	KindSingle TaskKind = "single"
	KindBatch  TaskKind = "batch"
)

// TaskHandle is the client-side record of one unit of work submitted to the
// external processor. It is mutated only by its owning poll session.
type TaskHandle struct {
	ID        string          `json:"task_id"`
	Kind      TaskKind        `json:"kind"`
	Status    TaskStatus      `json:"status"`
	Ready     bool            `json:"ready"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ---- external processor payloads ----

type SubmitRequest struct {
	Kind           TaskKind `json:"kind"`
	JobID          string   `json:"job_id"`
	CandidateIDs   []string `json:"candidate_ids,omitempty"`
	FileURLs       []string `json:"file_urls,omitempty"`
	SkipExtraction bool     `json:"skip_extraction,omitempty"`
}

type SubmitAccepted struct {
	TaskID  string     `json:"task_id"`
	Status  TaskStatus `json:"status"`
	Message string     `json:"message,omitempty"`
}

type ProgressInfo struct {
	Stage   string `json:"stage,omitempty"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	Success  bool            `json:"success"`
	Status   TaskStatus      `json:"status"`
	Ready    bool            `json:"ready"`
	Result   json.RawMessage `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
	Progress *ProgressInfo   `json:"progress,omitempty"`
}

type BatchItem struct {
	TaskID string          `json:"task_id"`
	Status TaskStatus      `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type BatchStatusResponse struct {
	Success   bool        `json:"success"`
	Total     int         `json:"total"`
	Completed int         `json:"completed"`
	Failed    int         `json:"failed"`
	Ready     bool        `json:"ready"`
	Results   []BatchItem `json:"results"`
}

// BatchProgress is recomputed from the latest batch payload on every tick.
// Completed counts every finished item, failures included; Failed is the
// subset that finished unsuccessfully, so Succeeded = Completed - Failed.
type BatchProgress struct {
	Total      int         `json:"total"`
	Completed  int         `json:"completed"`
	Failed     int         `json:"failed"`
	Succeeded  int         `json:"succeeded"`
	Percentage int         `json:"percentage"`
	Ready      bool        `json:"ready"`
	Results    []BatchItem `json:"results,omitempty"`
}

// EmbeddedFailure inspects a terminal result payload for the success:false
// convention some processor task types use instead of a top-level error field.
func EmbeddedFailure(result json.RawMessage) (string, bool) {
	if len(result) == 0 {
		return "", false
	}

	var probe struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(result, &probe); err != nil {
		return "", false
	}

	if probe.Success != nil && !*probe.Success {
		msg := probe.Error
		if msg == "" {
			msg = "task reported failure"
		}
		return msg, true
	}

	return "", false
}

// ---- projected domain results ----

type RankedCandidate struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
}

type UsageStats struct {
	TokensUsed int     `json:"tokens_used"`
	CostUSD    float64 `json:"cost_usd"`
}

type RankingResult struct {
	JobID      string            `json:"job_id,omitempty"`
	Candidates []RankedCandidate `json:"candidates"`
	Stats      *UsageStats       `json:"stats,omitempty"`
	CacheHit   bool              `json:"cache_hit"`
}

type UploadOutcome struct {
	TaskID   string     `json:"task_id"`
	FileName string     `json:"file_name,omitempty"`
	Status   TaskStatus `json:"status"`
	Error    string     `json:"error,omitempty"`
}

// ---- upstream caller boundary ----

type RankingRequest struct {
	JobID          string   `json:"job_id" validate:"required"`
	CandidateIDs   []string `json:"candidate_ids" validate:"omitempty,max=500,dive,required"`
	SkipExtraction bool     `json:"skip_extraction"`
}

type UploadRequest struct {
	JobID    string   `json:"job_id" validate:"required"`
	FileURLs []string `json:"file_urls" validate:"required,min=1,max=50,dive,url"`
}

type BulkRankingRequest struct {
	Jobs []RankingRequest `json:"jobs" validate:"required,min=1,max=10,dive"`
}

type AsyncAck struct {
	Success bool       `json:"success"`
	Async   bool       `json:"async"`
	TaskID  string     `json:"task_id"`
	Status  TaskStatus `json:"status"`
	PollURL string     `json:"poll_url"`
}

type BulkItemResult struct {
	JobID   string `json:"job_id"`
	TaskID  string `json:"task_id,omitempty"`
	PollURL string `json:"poll_url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SyncOutcome is what the bounded synchronous wait produces: exactly one of
// Result, Failed or TimedOut is meaningful. On timeout the remote task keeps
// running and PollURL is the continuation handle.
type SyncOutcome struct {
	TaskID   string
	PollURL  string
	TimedOut bool
	Failed   bool
	Error    string
	Result   *RankingResult
}

type TimeoutResponse struct {
	Error   string `json:"error"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
	PollURL string `json:"poll_url"`
}

type TaskView struct {
	TaskID   string         `json:"task_id"`
	Status   TaskStatus     `json:"status"`
	Ready    bool           `json:"ready"`
	Progress *ProgressInfo  `json:"progress,omitempty"`
	Result   *RankingResult `json:"result,omitempty"`
	Error    string         `json:"error,omitempty"`
}

type TrackedTask struct {
	TaskID    string     `json:"task_id"`
	Kind      TaskKind   `json:"kind"`
	Status    TaskStatus `json:"status"`
	Ready     bool       `json:"ready"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
