// Package projector turns raw processor payloads into domain shapes. All
// functions are pure: no network access, no side effects.
package projector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/michael0127/starplan-matcher/internal/app/models"
)

type rawCandidate struct {
	CandidateID string  `json:"candidate_id"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Score       float64 `json:"score"`
}

type rawRanking struct {
	JobID      string             `json:"job_id"`
	Candidates []rawCandidate     `json:"candidates"`
	Stats      *models.UsageStats `json:"stats"`
	CacheHit   bool               `json:"cache_hit"`
}

// Ranking projects a successful ranking result. Candidates keep the
// processor-reported order; rank is derived from position.
func Ranking(raw json.RawMessage) (*models.RankingResult, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty result payload")
	}

	var parsed rawRanking
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal ranking result: %w", err)
	}

	result := &models.RankingResult{
		JobID:      parsed.JobID,
		Candidates: make([]models.RankedCandidate, 0, len(parsed.Candidates)),
		Stats:      parsed.Stats,
		CacheHit:   parsed.CacheHit,
	}

	for i, c := range parsed.Candidates {
		id := c.CandidateID
		if id == "" {
			id = c.ID
		}
		result.Candidates = append(result.Candidates, models.RankedCandidate{
			CandidateID: id,
			Name:        c.Name,
			Email:       c.Email,
			Score:       c.Score,
			Rank:        i + 1,
		})
	}

	return result, nil
}

// BatchProgress derives aggregate progress from the latest batch payload.
// Percentage is always recomputed from scratch, never carried forward.
func BatchProgress(resp *models.BatchStatusResponse) *models.BatchProgress {
	progress := &models.BatchProgress{
		Total:     resp.Total,
		Completed: resp.Completed,
		Failed:    resp.Failed,
		Ready:     resp.Ready,
		Results:   resp.Results,
	}

	if succeeded := resp.Completed - resp.Failed; succeeded > 0 {
		progress.Succeeded = succeeded
	}

	if resp.Total > 0 {
		progress.Percentage = int(math.Round(float64(resp.Completed) / float64(resp.Total) * 100))
	}

	return progress
}

// UploadOutcomes projects per-item batch results into upload outcomes,
// preserving the processor-reported order.
func UploadOutcomes(items []models.BatchItem) []models.UploadOutcome {
	outcomes := make([]models.UploadOutcome, 0, len(items))

	for _, item := range items {
		outcome := models.UploadOutcome{
			TaskID: item.TaskID,
			Status: item.Status,
			Error:  item.Error,
		}

		if len(item.Result) > 0 {
			var meta struct {
				FileName string `json:"file_name"`
			}
			if err := json.Unmarshal(item.Result, &meta); err == nil {
				outcome.FileName = meta.FileName
			}
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
