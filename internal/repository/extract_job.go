package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/constants"
	"github.com/lbeckmann/cardvault/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, scanID, profileID uuid.UUID, status constants.JobStatus) (*ent.ExtractJob, error)
	FinishExtractSuccess(ctx context.Context, jobID, contactID uuid.UUID, extracted json.RawMessage) error
	FinishLLMSuccess(ctx context.Context, jobID, contactID uuid.UUID, extracted json.RawMessage, modelName string, modelParams map[string]any) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, scanID, profileID uuid.UUID, status constants.JobStatus) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetScanID(scanID).
		SetProfileID(profileID).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "scan_id", scanID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "scan_id", scanID)
	return job, nil
}

func (r *extractJobRepo) FinishExtractSuccess(ctx context.Context, jobID, contactID uuid.UUID, extracted json.RawMessage) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContactID(contactID).
		SetExtractedJSON(extracted).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (EXTRACT_OK)", "job_id", jobID, "contact_id", contactID)
	return nil
}

func (r *extractJobRepo) FinishLLMSuccess(ctx context.Context, jobID, contactID uuid.UUID, extracted json.RawMessage, modelName string, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContactID(contactID).
		SetExtractedJSON(extracted).
		SetLlmUsed(true).
		SetModelName(modelName).
		SetModelParams(params).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusLLMOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(LLM_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (LLM_OK)", "job_id", jobID, "model", modelName)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
