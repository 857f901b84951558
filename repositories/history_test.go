package repositories

import (
	"chat-stats/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newRun(at time.Time, input string) domain.RunSummary {
	return domain.RunSummary{
		ID:              uuid.New(),
		InputPath:       input,
		OutputPath:      "/tmp/out/wordcloud.png",
		Language:        "fa",
		TotalMessages:   12,
		TextMessages:    10,
		SkippedMessages: 2,
		RawTokens:       80,
		KeptTokens:      35,
		PlacedWords:     20,
		TopWords:        []domain.WordFrequency{{Word: "سلام", Count: 4}, {Word: "hello", Count: 3}},
		RSSBytes:        48 * 1024 * 1024,
		Duration:        1500 * time.Millisecond,
		At:              at,
	}
}

func Test_Store_And_List_Runs_Newest_First(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewHistoryRepository(db, slog.Default())
	at := time.Now().UTC()
	runs := []domain.RunSummary{
		newRun(at, "first.json"),
		newRun(at.Add(1*time.Minute), "second.json"),
		newRun(at.Add(2*time.Minute), "third.json"),
	}
	for _, run := range runs {
		req.NoError(repository.StoreRun(run))
	}

	fetched, err := repository.ListRuns(0)
	req.NoError(err)
	req.Equal([]domain.RunSummary{runs[2], runs[1], runs[0]}, fetched)
}

func Test_List_Runs_With_Limit(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewHistoryRepository(db, slog.Default())
	at := time.Now().UTC()
	for i := range 3 {
		req.NoError(repository.StoreRun(newRun(at.Add(time.Duration(i)*time.Second), "export.json")))
	}

	fetched, err := repository.ListRuns(2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.True(fetched[0].At.After(fetched[1].At))
}

func Test_List_Runs_On_Empty_Database(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	fetched, err := NewHistoryRepository(db, slog.Default()).ListRuns(10)
	req.NoError(err)
	req.Empty(fetched)
}
