package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/sentiment-service/generator/mocks"
	"github.com/blogem/sentiment-service/models"
	"github.com/blogem/sentiment-service/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SentimentServiceTestSuite is a test suite for the Analyze method
type SentimentServiceTestSuite struct {
	suite.Suite
	service      SentimentService
	mockProvider *mocks.MockProvider
	logRepo      repositories.LogRepository
	receivedAt   time.Time
}

// SetupTest sets up the test suite before each test
func (suite *SentimentServiceTestSuite) SetupTest() {
	suite.mockProvider = mocks.NewMockProvider(suite.T())
	suite.logRepo = repositories.NewLogRepository()
	suite.receivedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	suite.service = NewSentimentService(suite.mockProvider, suite.logRepo, discardLogger())
}

// TestAnalyze_Success tests that the completion is normalized and logged
func (suite *SentimentServiceTestSuite) TestAnalyze_Success() {
	text := "I'm having a great day!"
	suite.mockProvider.EXPECT().
		Generate(mock.Anything, BuildPrompt(text)).
		Return("  Positive\n", nil).
		Once()

	// Act
	result, err := suite.service.Analyze(context.Background(), models.AnalyzeRequest{Text: text}, suite.receivedAt)

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "positive", result.Sentiment)

	entries := suite.logRepo.All()
	if assert.Len(suite.T(), entries, 1) {
		assert.Equal(suite.T(), models.EndpointAnalyze, entries[0].Endpoint)
		assert.Equal(suite.T(), "2024-05-01T12:00:00.000Z", entries[0].Timestamp)
		assert.Equal(suite.T(), models.AnalyzeResult{Sentiment: "positive"}, entries[0].Result)
	}
}

// TestAnalyze_LogsLogSize tests that the completion line reports the log size
func (suite *SentimentServiceTestSuite) TestAnalyze_LogsLogSize() {
	var buf bytes.Buffer
	service := NewSentimentService(suite.mockProvider, suite.logRepo, slog.New(slog.NewTextHandler(&buf, nil)))
	suite.mockProvider.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return("neutral", nil).
		Twice()

	for i := 0; i < 2; i++ {
		_, err := service.Analyze(context.Background(), models.AnalyzeRequest{Text: "ok"}, suite.receivedAt)
		assert.NoError(suite.T(), err)
	}

	assert.Contains(suite.T(), buf.String(), "log_entries=1")
	assert.Contains(suite.T(), buf.String(), "log_entries=2")
}

// TestAnalyze_UnexpectedLabelPassesThrough tests that output outside the allowed labels is not coerced
func (suite *SentimentServiceTestSuite) TestAnalyze_UnexpectedLabelPassesThrough() {
	suite.mockProvider.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return("Mostly Positive.", nil)

	result, err := suite.service.Analyze(context.Background(), models.AnalyzeRequest{Text: "meh"}, suite.receivedAt)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "mostly positive.", result.Sentiment)
	assert.Equal(suite.T(), 1, suite.logRepo.Len())
}

// TestAnalyze_ValidationFailure tests that invalid text never reaches the provider
func (suite *SentimentServiceTestSuite) TestAnalyze_ValidationFailure() {
	for _, text := range []string{"", strings.Repeat("x", models.MaxTextLength+1)} {
		result, err := suite.service.Analyze(context.Background(), models.AnalyzeRequest{Text: text}, suite.receivedAt)

		assert.Nil(suite.T(), result)
		var validationErrs models.ValidationErrors
		assert.ErrorAs(suite.T(), err, &validationErrs)
	}

	suite.mockProvider.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything)
	assert.Equal(suite.T(), 0, suite.logRepo.Len())
}

// TestAnalyze_ProviderError tests that provider failures are wrapped and not logged to the store
func (suite *SentimentServiceTestSuite) TestAnalyze_ProviderError() {
	expectedError := errors.New("connection refused")
	suite.mockProvider.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return("", expectedError).
		Once()

	result, err := suite.service.Analyze(context.Background(), models.AnalyzeRequest{Text: "hello"}, suite.receivedAt)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, expectedError)
	assert.Equal(suite.T(), 0, suite.logRepo.Len())
}

// TestSentimentServiceTestSuite runs the test suite
func TestSentimentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SentimentServiceTestSuite))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(`say "hi"`)
	assert.Equal(t,
		`Analyze the sentiment of the following text and respond with only one word - 'positive', 'negative', or 'neutral': "say "hi""`,
		prompt,
	)
}

func TestNormalizeSentiment(t *testing.T) {
	tests := map[string]string{
		"positive":     "positive",
		" NEGATIVE \n": "negative",
		"\tNeutral":    "neutral",
		"Positive.":    "positive.",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSentiment(in), "input %q", in)
	}
}
