package domain

import "time"

// ItemError records a per-post failure that did not abort the run.
type ItemError struct {
	PostID  string `json:"post_id"`
	Message string `json:"message"`
}

// SyncReport is the outcome of one sync run.
type SyncReport struct {
	RunID           string      `json:"run_id"`
	Shop            string      `json:"shop"`
	Username        string      `json:"username"`
	AccountSwitched bool        `json:"account_switched"`
	PostsCreated    int         `json:"posts_created"`
	PostsUpdated    int         `json:"posts_updated"`
	PostsSkipped    int         `json:"posts_skipped"`
	ListingID       string      `json:"listing_id,omitempty"`
	ItemErrors      []ItemError `json:"item_errors,omitempty"`
	StartedAt       time.Time   `json:"started_at"`
	FinishedAt      time.Time   `json:"finished_at"`
}

// PurgeReport is the outcome of one purge pass. Errors holds non-fatal batch
// messages; a purge with errors still counts as completed.
type PurgeReport struct {
	PostsDeleted    int      `json:"posts_deleted"`
	ListingsDeleted int      `json:"listings_deleted"`
	FilesDeleted    int      `json:"files_deleted"`
	Errors          []string `json:"errors,omitempty"`
}

// UploadOutcome is what the media uploader hands back for one post. It is a
// result, not an error: a failed step contributes a message to Failures and
// no file ID, and the caller decides what a partial outcome means.
type UploadOutcome struct {
	FileIDs  []string `json:"file_ids"`
	Failures []string `json:"failures,omitempty"`
}

// Failed reports whether nothing at all was uploaded.
func (o UploadOutcome) Failed() bool {
	return len(o.FileIDs) == 0
}
