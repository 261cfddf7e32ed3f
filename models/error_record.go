package models

import (
	"strings"
	"time"
)

// ErrorRecord represents a request that ended with a server error
type ErrorRecord struct {
	ID        string    `json:"id" db:"id"`
	RequestID string    `json:"request_id" db:"request_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Method    string    `json:"method" db:"method"`
	Path      string    `json:"path" db:"path"`
	Status    int       `json:"status" db:"status"`
	Message   string    `json:"message,omitempty" db:"message"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
}

// Validate validates the error record before it is stored
func (e *ErrorRecord) Validate() ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(e.Method) == "" {
		errors = append(errors, ValidationError{Field: "method", Message: "Method is required"})
	}

	if !strings.HasPrefix(e.Path, "/") {
		errors = append(errors, ValidationError{Field: "path", Message: "Path must start with /"})
	}

	if e.Status < 500 || e.Status > 599 {
		errors = append(errors, ValidationError{Field: "status", Message: "Status must be a server error (5xx)"})
	}

	return errors
}
