package models

import (
	"time"
)

// PageData represents common data passed to templates
type PageData struct {
	Title       string `json:"title"`
	CurrentPage string `json:"current_page"`
	RequestID   string `json:"request_id,omitempty"`
}

// NewPageData builds page data for the given page
func NewPageData(title, currentPage string) *PageData {
	return &PageData{
		Title:       title,
		CurrentPage: currentPage,
	}
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}
