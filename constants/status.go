package constants

// JobStatus is the canonical status for rows in ocr_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // row created, file saved
	JobStatusProcessing JobStatus = "PROCESSING" // pipeline running
	JobStatusCompleted  JobStatus = "COMPLETED"  // result row written
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field on OcrJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}
