package domain

import "time"

const (
	SyncRunStatusSuccess = "success"
	SyncRunStatusFailed  = "failed"
)

// SyncRun is the audit row persisted for every run, successful or not.
type SyncRun struct {
	ID           int       `json:"id"`
	RunID        string    `json:"run_id"`
	Shop         string    `json:"shop"`
	Username     string    `json:"username"`
	Status       string    `json:"status"`
	PostsCreated int       `json:"posts_created"`
	PostsUpdated int       `json:"posts_updated"`
	PostsSkipped int       `json:"posts_skipped"`
	ErrorMessage string    `json:"error_message,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}
