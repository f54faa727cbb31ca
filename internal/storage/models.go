package storage

import "time"

// QueryRecord is one handled chat request in the query log.
type QueryRecord struct {
	ID         string // UUID, generated on insert when empty
	RequestID  string // X-Request-ID of the HTTP request, if any
	Message    string
	IntentType string // "search" or "general"
	Keyword    string
	Sort       string
	Limit      int
	PostCount  int
	Reply      string
	Duration   time.Duration
	CreatedAt  time.Time
}
