package services

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"chat-stats/mocks"
	"chat-stats/render"
	"chat-stats/statistics"
	"chat-stats/textproc"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const helloExport = `{
  "name": "Friends",
  "messages": [
    {"id": 1, "from": "Alice", "text": "hello world hello"},
    {"id": 2, "from": "Bob", "text": null},
    {"id": 3, "from": "Alice", "text": "hello chat"}
  ]
}`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newService(t *testing.T, history *mocks.MockIHistoryRepository) *ChatStatistics {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	aggregator := statistics.NewAggregator(log, textproc.NewNormalizer(), textproc.NewReshaper(),
		domain.NewStopwordSet("world"), nil, statistics.DefaultOptions())
	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height, cfg.MaxFontSize = 200, 150, 40
	renderer := render.NewRenderer(log, cfg)
	if history == nil {
		return NewChatStatistics(log, aggregator, renderer, nil, 5)
	}
	return NewChatStatistics(log, aggregator, renderer, history, 5)
}

func TestChatStatistics_GenerateWordCloud(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	history := mocks.NewMockIHistoryRepository(ctrl)
	input := writeExport(t, helloExport)
	output := t.TempDir()

	var stored domain.RunSummary
	history.EXPECT().StoreRun(gomock.Any()).DoAndReturn(func(run domain.RunSummary) error {
		stored = run
		return nil
	})

	summary, err := newService(t, history).GenerateWordCloud(input, output)
	req.NoError(err)
	req.Equal(summary, stored)
	req.Equal(filepath.Join(output, render.OutputFilename), summary.OutputPath)
	req.Equal(input, summary.InputPath)
	req.Equal(3, summary.TotalMessages)
	req.Equal(2, summary.TextMessages)
	req.Equal(1, summary.SkippedMessages)
	req.Equal(5, summary.RawTokens)
	req.Equal(4, summary.KeptTokens)
	req.Equal(2, summary.PlacedWords)
	req.Equal([]domain.WordFrequency{{Word: "hello", Count: 3}, {Word: "chat", Count: 1}}, summary.TopWords)
	req.NotZero(summary.ID)
	req.FileExists(summary.OutputPath)
}

func TestChatStatistics_GenerateWordCloud_History_Failure_Is_Not_Fatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	history := mocks.NewMockIHistoryRepository(ctrl)
	history.EXPECT().StoreRun(gomock.Any()).Return(fmt.Errorf("disk full"))

	summary, err := newService(t, history).GenerateWordCloud(writeExport(t, helloExport), t.TempDir())
	req.NoError(err)
	req.FileExists(summary.OutputPath)
}

func TestChatStatistics_GenerateWordCloud_Errors(t *testing.T) {
	testCases := []struct {
		description string
		input       func(t *testing.T) string
		assert      func(req *require.Assertions, err error)
	}{
		{
			"Should fail with a DataLoadError when the export is missing",
			func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			func(req *require.Assertions, err error) {
				var loadErr *errors.DataLoadError
				req.True(stdErrors.As(err, &loadErr))
				req.ErrorIs(err, os.ErrNotExist)
			},
		},
		{
			"Should fail with a DataLoadError when messages are missing",
			func(t *testing.T) string { return writeExport(t, `{"name":"empty"}`) },
			func(req *require.Assertions, err error) {
				req.ErrorIs(err, errors.ErrMissingMessages)
			},
		},
		{
			"Should fail with a RenderError when no message has text",
			func(t *testing.T) string { return writeExport(t, `{"messages":[{"text":null},{"text":[{"type":"bold","text":"x"}]}]}`) },
			func(req *require.Assertions, err error) {
				var renderErr *errors.RenderError
				req.True(stdErrors.As(err, &renderErr))
				req.ErrorIs(err, errors.ErrEmptyCorpus)
			},
		},
		{
			"Should fail with a RenderError when every word is a stopword",
			func(t *testing.T) string { return writeExport(t, `{"messages":[{"text":"world"},{"text":"WORLD world"}]}`) },
			func(req *require.Assertions, err error) {
				req.ErrorIs(err, errors.ErrEmptyCorpus)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			history := mocks.NewMockIHistoryRepository(ctrl)
			output := t.TempDir()

			_, err := newService(t, history).GenerateWordCloud(tc.input(t), output)
			req.Error(err)
			tc.assert(req, err)

			entries, err := os.ReadDir(output)
			req.NoError(err)
			req.Empty(entries)
		})
	}
}

func TestChatStatistics_Report(t *testing.T) {
	req := require.New(t)
	report, err := newService(t, nil).Report(writeExport(t, helloExport), 1)
	req.NoError(err)

	req.Equal("Friends", report.Name)
	req.Equal(3, report.TotalMessages)
	req.Equal(2, report.TextMessages)
	req.Equal(1, report.SkippedMessages)
	req.Equal([]domain.WordFrequency{{Word: "Alice", Count: 2}}, report.TopSenders)
	req.Equal([]domain.WordFrequency{{Word: "hello", Count: 3}}, report.TopWords)
	req.Equal(1, report.Stats.StopwordsRemoved)
}

func TestChatStatistics_History(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	history := mocks.NewMockIHistoryRepository(ctrl)
	runs := []domain.RunSummary{{InputPath: "a.json"}, {InputPath: "b.json"}}
	history.EXPECT().ListRuns(10).Return(runs, nil)

	fetched, err := newService(t, history).History(10)
	req.NoError(err)
	req.Equal(runs, fetched)

	_, err = newService(t, nil).History(10)
	req.ErrorIs(err, errors.ErrHistoryDisabled)
}
