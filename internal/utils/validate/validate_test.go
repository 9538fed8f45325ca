package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/michael0127/starplan-matcher/internal/app/models"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
	"github.com/stretchr/testify/assert"
)

func TestStruct_RankingRequest(t *testing.T) {
	tests := []struct {
		name      string
		request   models.RankingRequest
		wantError bool
	}{
		{
			name: "Valid",
			request: models.RankingRequest{
				JobID:        "job-42",
				CandidateIDs: []string{"c1", "c2"},
			},
			wantError: false,
		},
		{
			name: "ValidWithoutCandidates",
			request: models.RankingRequest{
				JobID: "job-42",
			},
			wantError: false,
		},
		{
			name:      "MissingJobID",
			request:   models.RankingRequest{CandidateIDs: []string{"c1"}},
			wantError: true,
		},
		{
			name: "EmptyCandidateID",
			request: models.RankingRequest{
				JobID:        "job-42",
				CandidateIDs: []string{"c1", ""},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.request)
			if tt.wantError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct_UploadRequest(t *testing.T) {
	tests := []struct {
		name      string
		request   models.UploadRequest
		wantError bool
	}{
		{
			name: "Valid",
			request: models.UploadRequest{
				JobID:    "job-1",
				FileURLs: []string{"https://cdn.example.com/cv1.pdf"},
			},
			wantError: false,
		},
		{
			name:      "NoFiles",
			request:   models.UploadRequest{JobID: "job-1"},
			wantError: true,
		},
		{
			name: "NotAURL",
			request: models.UploadRequest{
				JobID:    "job-1",
				FileURLs: []string{"not a url"},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.request)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskID(t *testing.T) {
	assert.NoError(t, TaskID(uuid.NewString()))

	err := TaskID("definitely-not-a-uuid")
	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)

	assert.Error(t, TaskID(""))
}
