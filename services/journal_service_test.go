package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/repositories/mocks"
)

// JournalServiceTestSuite is a test suite for the journal service
type JournalServiceTestSuite struct {
	suite.Suite
	service         JournalService
	mockJournalRepo *mocks.MockErrorJournalRepository
	ctx             context.Context
	now             time.Time
	originalTimeNow func() time.Time
}

// SetupTest sets up the test suite before each test
func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = mocks.NewMockErrorJournalRepository(suite.T())
	suite.service = NewJournalService(suite.mockJournalRepo)
	suite.ctx = context.Background()

	suite.now = time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	suite.originalTimeNow = timeNow
	timeNow = func() time.Time { return suite.now }
}

// TearDownTest restores the clock
func (suite *JournalServiceTestSuite) TearDownTest() {
	timeNow = suite.originalTimeNow
}

// TestRecord_FillsIDAndTimestamp tests that missing fields are filled before storing
func (suite *JournalServiceTestSuite) TestRecord_FillsIDAndTimestamp() {
	record := &models.ErrorRecord{Method: "GET", Path: "/", Status: 500}
	suite.mockJournalRepo.EXPECT().Create(suite.ctx, record).Return(nil)

	err := suite.service.Record(suite.ctx, record)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), record.ID)
	assert.Equal(suite.T(), suite.now, record.Timestamp)
}

// TestRecord_KeepsExistingValues tests that provided fields are not overwritten
func (suite *JournalServiceTestSuite) TestRecord_KeepsExistingValues() {
	ts := suite.now.Add(-time.Minute)
	record := &models.ErrorRecord{ID: "fixed", Timestamp: ts, Method: "GET", Path: "/", Status: 502}
	suite.mockJournalRepo.EXPECT().Create(suite.ctx, record).Return(nil)

	err := suite.service.Record(suite.ctx, record)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "fixed", record.ID)
	assert.Equal(suite.T(), ts, record.Timestamp)
}

// TestRecord_TruncatesMessage tests that oversized messages are cut
func (suite *JournalServiceTestSuite) TestRecord_TruncatesMessage() {
	record := &models.ErrorRecord{Method: "GET", Path: "/", Status: 500, Message: strings.Repeat("x", 5000)}
	suite.mockJournalRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(nil)

	err := suite.service.Record(suite.ctx, record)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), record.Message, maxMessageLength)
}

// TestRecord_TruncatesMultiByteMessage tests that truncation keeps whole runes
func (suite *JournalServiceTestSuite) TestRecord_TruncatesMultiByteMessage() {
	record := &models.ErrorRecord{Method: "GET", Path: "/", Status: 500, Message: "a" + strings.Repeat("é", 600)}
	suite.mockJournalRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(nil)

	err := suite.service.Record(suite.ctx, record)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), utf8.ValidString(record.Message))
	assert.Len(suite.T(), record.Message, maxMessageLength-1)
	assert.True(suite.T(), strings.HasPrefix(record.Message, "aé"))
}

// TestRecord_ValidationFailure tests that invalid records never reach the repository
func (suite *JournalServiceTestSuite) TestRecord_ValidationFailure() {
	record := &models.ErrorRecord{Method: "GET", Path: "/", Status: 404}

	err := suite.service.Record(suite.ctx, record)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestRecord_RepositoryError tests error wrapping
func (suite *JournalServiceTestSuite) TestRecord_RepositoryError() {
	expectedError := errors.New("database is locked")
	record := &models.ErrorRecord{Method: "GET", Path: "/", Status: 500}
	suite.mockJournalRepo.EXPECT().Create(suite.ctx, record).Return(expectedError)

	err := suite.service.Record(suite.ctx, record)

	assert.ErrorIs(suite.T(), err, expectedError)
	assert.Contains(suite.T(), err.Error(), "failed to record error")
}

// TestRecent_ClampsLimit tests limit normalisation
func (suite *JournalServiceTestSuite) TestRecent_ClampsLimit() {
	suite.mockJournalRepo.EXPECT().Recent(suite.ctx, DefaultRecentLimit).Return(nil, nil).Once()
	suite.mockJournalRepo.EXPECT().Recent(suite.ctx, MaxRecentLimit).Return(nil, nil).Once()
	suite.mockJournalRepo.EXPECT().Recent(suite.ctx, 7).Return([]models.ErrorRecord{{ID: "a"}}, nil).Once()

	_, err := suite.service.Recent(suite.ctx, 0)
	assert.NoError(suite.T(), err)

	_, err = suite.service.Recent(suite.ctx, 10000)
	assert.NoError(suite.T(), err)

	records, err := suite.service.Recent(suite.ctx, 7)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}

// TestRecent_RepositoryError tests error wrapping
func (suite *JournalServiceTestSuite) TestRecent_RepositoryError() {
	suite.mockJournalRepo.EXPECT().Recent(suite.ctx, 5).Return(nil, errors.New("disk I/O error"))

	records, err := suite.service.Recent(suite.ctx, 5)

	assert.Nil(suite.T(), records)
	assert.ErrorContains(suite.T(), err, "failed to get recent errors")
}

// TestPurge_UsesCutoff tests the cutoff passed to the repository
func (suite *JournalServiceTestSuite) TestPurge_UsesCutoff() {
	suite.mockJournalRepo.EXPECT().DeleteBefore(suite.ctx, suite.now.Add(-72*time.Hour)).Return(int64(4), nil)

	deleted, err := suite.service.Purge(suite.ctx, 72*time.Hour)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), deleted)
}

// TestPurge_RejectsNonPositiveAge tests input validation
func (suite *JournalServiceTestSuite) TestPurge_RejectsNonPositiveAge() {
	_, err := suite.service.Purge(suite.ctx, 0)

	assert.Error(suite.T(), err)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteBefore", mock.Anything, mock.Anything)
}

// TestHealthy tests that health mirrors the repository ping
func (suite *JournalServiceTestSuite) TestHealthy() {
	suite.mockJournalRepo.EXPECT().Ping(suite.ctx).Return(errors.New("closed")).Once()

	assert.Error(suite.T(), suite.service.Healthy(suite.ctx))
}

// Run the test suite
func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func TestNewServices_NilRepositories(t *testing.T) {
	srvs := NewServices(nil)

	assert.NotNil(t, srvs)
	assert.Nil(t, srvs.Journal)
}
