package models

import "time"

// Project represents a builder project: a collection of screens and the
// inference artifacts derived from them.
type Project struct {
	ID          string    `json:"id"` // proj_{uuid}
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AutoAnalyze bool      `json:"auto_analyze"` // Include in scheduled re-analysis runs
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
