package model

import "time"

// JobOpportunity is a job posting managed by admins. Only published rows are
// visible to unauthenticated callers.
type JobOpportunity struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	Description  string    `json:"description"`
	Requirements *string   `json:"requirements,omitempty"`
	SalaryRange  *string   `json:"salary_range,omitempty"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
