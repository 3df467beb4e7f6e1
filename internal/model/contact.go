package model

import "time"

// Contact statuses. Stored as plain text; the store does not reject other
// values, status updates are unconditional overwrites.
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusDone       = "done"
)

// Contact is a message submitted through the public contact form.
// Optional columns are pointers so NULL survives a round-trip unchanged.
type Contact struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusCount is one bucket of a per-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
