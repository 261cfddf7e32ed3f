package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// Limits applied to Recent
const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// maxMessageLength bounds the stored error message
const maxMessageLength = 1024

// JournalService interface defines error journal business logic
type JournalService interface {
	Record(ctx context.Context, record *models.ErrorRecord) error
	Recent(ctx context.Context, limit int) ([]models.ErrorRecord, error)
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
	Healthy(ctx context.Context) error
}

// journalService implements JournalService interface
type journalService struct {
	journalRepo repositories.ErrorJournalRepository
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repositories.ErrorJournalRepository) JournalService {
	return &journalService{
		journalRepo: journalRepo,
	}
}

// Record validates and stores an error record, filling in its ID and timestamp
func (s *journalService) Record(ctx context.Context, record *models.ErrorRecord) error {
	if errors := record.Validate(); errors.HasErrors() {
		return fmt.Errorf("validation failed: %s", strings.Join(errors.GetMessages(), ", "))
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = timeNow()
	}
	record.Message = truncateMessage(record.Message, maxMessageLength)

	if err := s.journalRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record error: %w", err)
	}

	return nil
}

// Recent returns the newest records; limit is clamped to 1..MaxRecentLimit
// and a non-positive limit means DefaultRecentLimit
func (s *journalService) Recent(ctx context.Context, limit int) ([]models.ErrorRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	records, err := s.journalRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent errors: %w", err)
	}

	return records, nil
}

// Purge removes records older than olderThan
func (s *journalService) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("purge age must be positive, got %s", olderThan)
	}

	deleted, err := s.journalRepo.DeleteBefore(ctx, timeNow().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to purge errors: %w", err)
	}

	return deleted, nil
}

// Healthy reports whether the journal store is reachable
func (s *journalService) Healthy(ctx context.Context) error {
	return s.journalRepo.Ping(ctx)
}

// truncateMessage cuts msg to at most limit bytes without splitting a rune
func truncateMessage(msg string, limit int) string {
	if len(msg) <= limit {
		return msg
	}
	n := limit
	for n > 0 && !utf8.RuneStart(msg[n]) {
		n--
	}
	return msg[:n]
}
