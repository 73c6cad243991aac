package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (heuristics + fusion)
	JobStatusLLMOK     JobStatus = "LLM_OK"     // stage 2 completed (missing fields filled)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
